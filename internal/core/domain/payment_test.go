package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quickfunds/loanflow_backend/internal/core/domain"
)

func gateway(enabled bool, creds map[string]string) domain.GatewayConfig {
	return domain.GatewayConfig{
		Key:            "stripe",
		Name:           "Stripe",
		Enabled:        enabled,
		RequiredFields: []string{"publishable_key", "secret_key"},
		Credentials:    creds,
	}
}

func TestGatewayConfig_MissingFields(t *testing.T) {
	g := gateway(true, map[string]string{"publishable_key": "pk"})
	assert.Equal(t, []string{"secret_key"}, g.MissingFields())

	g = gateway(true, map[string]string{"publishable_key": "pk", "secret_key": ""})
	assert.Equal(t, []string{"secret_key"}, g.MissingFields(), "empty value counts as absent")

	g = gateway(true, map[string]string{"publishable_key": "pk", "secret_key": "sk"})
	assert.Empty(t, g.MissingFields())
}

func TestGatewayConfig_Available(t *testing.T) {
	full := map[string]string{"publishable_key": "pk", "secret_key": "sk"}

	assert.True(t, gateway(true, full).Available())
	assert.False(t, gateway(false, full).Available(), "disabled gateway is never available")
	assert.False(t, gateway(true, nil).Available(), "uncredentialed gateway is never available")
}

func TestValidLoanType(t *testing.T) {
	for _, lt := range []string{"personal", "debt_consolidation", "home_repair", "automotive", "business", "medical"} {
		assert.True(t, domain.ValidLoanType(lt), lt)
	}
	assert.False(t, domain.ValidLoanType(""))
	assert.False(t, domain.ValidLoanType("yacht"))
}
