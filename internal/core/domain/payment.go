package domain

// PaymentMethod is a high-level payment method category shown to clients.
type PaymentMethod string

const (
	MethodWireTransfer PaymentMethod = "wire_transfer"
	MethodETransfer    PaymentMethod = "e_transfer"
	MethodCrypto       PaymentMethod = "crypto"
	MethodCard         PaymentMethod = "credit_card"
)

// GatewayConfig is an administrator-authored card gateway configuration.
// It is read-only from the core's perspective; availability is a pure
// predicate over it.
type GatewayConfig struct {
	Key            string            `json:"key"`  // e.g., "stripe"
	Name           string            `json:"name"` // display name
	Enabled        bool              `json:"enabled"`
	Sandbox        bool              `json:"sandbox"`
	RequiredFields []string          `json:"-"` // credential fields that must be present
	Credentials    map[string]string `json:"-"` // field name -> value ("" counts as absent)
}

// MissingFields returns the required credential fields that are absent or
// empty, in declaration order.
func (g GatewayConfig) MissingFields() []string {
	var missing []string
	for _, f := range g.RequiredFields {
		if g.Credentials[f] == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Configured reports whether every required credential field is present.
func (g GatewayConfig) Configured() bool {
	return len(g.MissingFields()) == 0
}

// Available reports whether the gateway may be shown to clients:
// enabled by the administrator and fully credentialed. No network calls.
func (g GatewayConfig) Available() bool {
	return g.Enabled && g.Configured()
}

// GatewayStatus is the read-only diagnostic view of a gateway for
// administrative troubleshooting.
type GatewayStatus struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Enabled       bool     `json:"enabled"`
	Configured    bool     `json:"configured"`
	Available     bool     `json:"available"`
	MissingFields []string `json:"missingFields"`
}

// MethodOption is one entry of the resolved payment method list for a
// billing country. Gateways is populated for the card category only.
type MethodOption struct {
	Method   PaymentMethod   `json:"method"`
	Gateways []GatewayConfig `json:"gateways,omitempty"`
}
