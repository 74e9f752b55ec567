package dto

import "github.com/quickfunds/loanflow_backend/internal/core/domain"

// GatewayOption is the client-facing shape of an available card gateway.
// Secret credentials are never included.
type GatewayOption struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Sandbox bool   `json:"sandbox"`
}

// MethodOptionResponse is one payment method category offered to the
// client for their billing country.
type MethodOptionResponse struct {
	Method   string          `json:"method"`
	Gateways []GatewayOption `json:"gateways,omitempty"`
}

// PaymentOptionsResponse lists the payment methods safe to show a client.
type PaymentOptionsResponse struct {
	Country string                 `json:"country"`
	Methods []MethodOptionResponse `json:"methods"`
}

// GatewayStatusResponse is the admin diagnostic view per gateway.
type GatewayStatusResponse struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Enabled       bool     `json:"enabled"`
	Configured    bool     `json:"configured"`
	Available     bool     `json:"available"`
	MissingFields []string `json:"missing_fields"`
}

// ToPaymentOptionsResponse maps resolved method options, stripping
// credential material from gateway entries.
func ToPaymentOptionsResponse(country string, methods []domain.MethodOption) PaymentOptionsResponse {
	resp := PaymentOptionsResponse{Country: country, Methods: make([]MethodOptionResponse, 0, len(methods))}
	for _, m := range methods {
		entry := MethodOptionResponse{Method: string(m.Method)}
		for _, g := range m.Gateways {
			entry.Gateways = append(entry.Gateways, GatewayOption{Key: g.Key, Name: g.Name, Sandbox: g.Sandbox})
		}
		resp.Methods = append(resp.Methods, entry)
	}
	return resp
}

// ToGatewayStatusResponses maps the diagnostic view for the admin surface.
func ToGatewayStatusResponses(statuses []domain.GatewayStatus) []GatewayStatusResponse {
	out := make([]GatewayStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		missing := s.MissingFields
		if missing == nil {
			missing = []string{}
		}
		out = append(out, GatewayStatusResponse{
			Key:           s.Key,
			Name:          s.Name,
			Enabled:       s.Enabled,
			Configured:    s.Configured,
			Available:     s.Available,
			MissingFields: missing,
		})
	}
	return out
}
