package services

import (
	"context"
	"fmt"

	"github.com/quickfunds/loanflow_backend/internal/core/domain"
	"github.com/quickfunds/loanflow_backend/internal/core/ports"
)

// methodSpec declares one payment method category and, when countries is
// non-nil, the billing countries it is restricted to.
type methodSpec struct {
	method    domain.PaymentMethod
	countries []string // nil means available everywhere
}

// methodCatalog fixes the order method categories are presented in.
// e_transfer is a domestic interbank method restricted to Canada.
var methodCatalog = []methodSpec{
	{method: domain.MethodWireTransfer, countries: []string{"USA", "GBR", "AUS"}},
	{method: domain.MethodETransfer, countries: []string{"CAN"}},
	{method: domain.MethodCrypto},
	{method: domain.MethodCard},
}

// gatewayCatalog fixes the supported card gateways and their required
// credential fields.
var gatewayCatalog = []struct {
	key      string
	name     string
	required []string
}{
	{key: "stripe", name: "Stripe", required: []string{"publishable_key", "secret_key"}},
	{key: "paypal", name: "PayPal", required: []string{"client_id", "client_secret"}},
}

// PaymentConfigService computes which payment methods and gateways are
// safe to expose. Availability is a pure predicate over the configuration
// snapshot: no network calls, no side effects, safe to invoke
// concurrently.
type PaymentConfigService struct {
	settings ports.PaymentSettingsRepository
}

// NewPaymentConfigService creates a PaymentConfigService.
func NewPaymentConfigService(settings ports.PaymentSettingsRepository) *PaymentConfigService {
	return &PaymentConfigService{settings: settings}
}

// GatewayConfigsFromSettings builds the typed gateway configurations from
// the administrator's key/value settings snapshot. Absent keys mean
// disabled/unconfigured, never an error.
func GatewayConfigsFromSettings(settings map[string]string) []domain.GatewayConfig {
	configs := make([]domain.GatewayConfig, 0, len(gatewayCatalog))
	for _, g := range gatewayCatalog {
		creds := make(map[string]string, len(g.required))
		for _, f := range g.required {
			creds[f] = settings[g.key+"_"+f]
		}
		configs = append(configs, domain.GatewayConfig{
			Key:            g.key,
			Name:           g.name,
			Enabled:        settings[g.key+"_enabled"] == "1",
			Sandbox:        settings[g.key+"_sandbox"] == "1",
			RequiredFields: g.required,
			Credentials:    creds,
		})
	}
	return configs
}

// ResolveAvailableGateways filters to gateways that are enabled and fully
// credentialed.
func ResolveAvailableGateways(configs []domain.GatewayConfig) []domain.GatewayConfig {
	var available []domain.GatewayConfig
	for _, g := range configs {
		if g.Available() {
			available = append(available, g)
		}
	}
	return available
}

// ResolveMethods computes the method categories for a billing country.
// The card category is included only when at least one gateway is
// available; a client is never shown an option it cannot complete.
func ResolveMethods(countryCode string, configs []domain.GatewayConfig) []domain.MethodOption {
	gateways := ResolveAvailableGateways(configs)
	var methods []domain.MethodOption
	for _, spec := range methodCatalog {
		if spec.countries != nil && !containsCountry(spec.countries, countryCode) {
			continue
		}
		if spec.method == domain.MethodCard {
			if len(gateways) == 0 {
				continue
			}
			methods = append(methods, domain.MethodOption{Method: spec.method, Gateways: gateways})
			continue
		}
		methods = append(methods, domain.MethodOption{Method: spec.method})
	}
	return methods
}

// ResolveGatewayStatuses builds the read-only diagnostic view per
// gateway. Missing configuration is represented as unavailable, never as
// an error.
func ResolveGatewayStatuses(configs []domain.GatewayConfig) []domain.GatewayStatus {
	statuses := make([]domain.GatewayStatus, 0, len(configs))
	for _, g := range configs {
		statuses = append(statuses, domain.GatewayStatus{
			Key:           g.Key,
			Name:          g.Name,
			Enabled:       g.Enabled,
			Configured:    g.Configured(),
			Available:     g.Available(),
			MissingFields: g.MissingFields(),
		})
	}
	return statuses
}

// AvailableMethods returns the method categories offered for the billing
// country under the current administrator configuration.
func (s *PaymentConfigService) AvailableMethods(ctx context.Context, countryCode string) ([]domain.MethodOption, error) {
	configs, err := s.loadConfigs(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveMethods(countryCode, configs), nil
}

// AvailableGateways returns the gateways that are enabled and fully
// credentialed.
func (s *PaymentConfigService) AvailableGateways(ctx context.Context) ([]domain.GatewayConfig, error) {
	configs, err := s.loadConfigs(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveAvailableGateways(configs), nil
}

// GatewayStatuses returns the diagnostic view for administrative
// troubleshooting. Authorization is the caller's concern.
func (s *PaymentConfigService) GatewayStatuses(ctx context.Context) ([]domain.GatewayStatus, error) {
	configs, err := s.loadConfigs(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveGatewayStatuses(configs), nil
}

func (s *PaymentConfigService) loadConfigs(ctx context.Context) ([]domain.GatewayConfig, error) {
	settings, err := s.settings.GetPaymentSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment settings: %w", err)
	}
	return GatewayConfigsFromSettings(settings), nil
}

func containsCountry(countries []string, code string) bool {
	for _, c := range countries {
		if c == code {
			return true
		}
	}
	return false
}
