package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quickfunds/loanflow_backend/internal/core/domain"
	"github.com/quickfunds/loanflow_backend/internal/core/services"
)

// --- Mock PaymentSettingsRepository ---
type MockPaymentSettingsRepository struct {
	mock.Mock
	GetPaymentSettingsFn func(ctx context.Context) (map[string]string, error)
}

func (m *MockPaymentSettingsRepository) GetPaymentSettings(ctx context.Context) (map[string]string, error) {
	if m.GetPaymentSettingsFn != nil {
		return m.GetPaymentSettingsFn(ctx)
	}
	args := m.Called(ctx)
	var settings map[string]string
	if args.Get(0) != nil {
		settings = args.Get(0).(map[string]string)
	}
	return settings, args.Error(1)
}

func stripeSettings(enabled, configured bool) map[string]string {
	settings := map[string]string{}
	if enabled {
		settings["stripe_enabled"] = "1"
	}
	if configured {
		settings["stripe_publishable_key"] = "pk_test_123"
		settings["stripe_secret_key"] = "sk_test_123"
	}
	return settings
}

func TestResolveAvailableGateways_EnabledAndConfiguredGrid(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		configured bool
		available  bool
	}{
		{"disabled and unconfigured", false, false, false},
		{"disabled but configured", false, true, false},
		{"enabled but unconfigured", true, false, false},
		{"enabled and configured", true, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			configs := services.GatewayConfigsFromSettings(stripeSettings(tc.enabled, tc.configured))
			available := services.ResolveAvailableGateways(configs)

			if tc.available {
				require.Len(t, available, 1)
				assert.Equal(t, "stripe", available[0].Key)
			} else {
				assert.Empty(t, available)
			}
		})
	}
}

func TestResolveAvailableGateways_PartialCredentialsUnavailable(t *testing.T) {
	settings := map[string]string{
		"stripe_enabled":         "1",
		"stripe_publishable_key": "pk_test_123",
		// secret_key missing
	}
	configs := services.GatewayConfigsFromSettings(settings)

	assert.Empty(t, services.ResolveAvailableGateways(configs))
}

func TestResolveMethods_CardOmittedWithoutGateways(t *testing.T) {
	configs := services.GatewayConfigsFromSettings(map[string]string{})

	methods := services.ResolveMethods("USA", configs)

	require.Len(t, methods, 2)
	assert.Equal(t, domain.MethodWireTransfer, methods[0].Method)
	assert.Equal(t, domain.MethodCrypto, methods[1].Method)
}

func TestResolveMethods_CardCarriesAvailableGateways(t *testing.T) {
	configs := services.GatewayConfigsFromSettings(stripeSettings(true, true))

	methods := services.ResolveMethods("USA", configs)

	require.Len(t, methods, 3)
	card := methods[2]
	assert.Equal(t, domain.MethodCard, card.Method)
	require.Len(t, card.Gateways, 1)
	assert.Equal(t, "stripe", card.Gateways[0].Key)
}

func TestResolveMethods_CountryRestrictions(t *testing.T) {
	configs := services.GatewayConfigsFromSettings(map[string]string{})

	tests := []struct {
		country string
		methods []domain.PaymentMethod
	}{
		{"USA", []domain.PaymentMethod{domain.MethodWireTransfer, domain.MethodCrypto}},
		{"GBR", []domain.PaymentMethod{domain.MethodWireTransfer, domain.MethodCrypto}},
		{"AUS", []domain.PaymentMethod{domain.MethodWireTransfer, domain.MethodCrypto}},
		{"CAN", []domain.PaymentMethod{domain.MethodETransfer, domain.MethodCrypto}},
	}

	for _, tc := range tests {
		t.Run(tc.country, func(t *testing.T) {
			got := services.ResolveMethods(tc.country, configs)
			fields := make([]domain.PaymentMethod, 0, len(got))
			for _, m := range got {
				fields = append(fields, m.Method)
			}
			assert.Equal(t, tc.methods, fields)
		})
	}
}

func TestResolveGatewayStatuses_Diagnostics(t *testing.T) {
	settings := map[string]string{
		"stripe_enabled":         "1",
		"stripe_publishable_key": "pk_test_123",
		"paypal_enabled":         "0",
		"paypal_client_id":       "cid",
		"paypal_client_secret":   "secret",
	}
	configs := services.GatewayConfigsFromSettings(settings)

	statuses := services.ResolveGatewayStatuses(configs)

	require.Len(t, statuses, 2)

	stripe := statuses[0]
	assert.Equal(t, "stripe", stripe.Key)
	assert.True(t, stripe.Enabled)
	assert.False(t, stripe.Configured)
	assert.False(t, stripe.Available)
	assert.Equal(t, []string{"secret_key"}, stripe.MissingFields)

	paypal := statuses[1]
	assert.Equal(t, "paypal", paypal.Key)
	assert.False(t, paypal.Enabled)
	assert.True(t, paypal.Configured)
	assert.False(t, paypal.Available)
	assert.Empty(t, paypal.MissingFields)
}

func TestPaymentConfigService_AvailableMethods(t *testing.T) {
	repo := &MockPaymentSettingsRepository{
		GetPaymentSettingsFn: func(ctx context.Context) (map[string]string, error) {
			return stripeSettings(true, true), nil
		},
	}
	svc := services.NewPaymentConfigService(repo)

	methods, err := svc.AvailableMethods(context.Background(), "CAN")

	require.NoError(t, err)
	require.Len(t, methods, 3)
	assert.Equal(t, domain.MethodETransfer, methods[0].Method)
	assert.Equal(t, domain.MethodCrypto, methods[1].Method)
	assert.Equal(t, domain.MethodCard, methods[2].Method)
}

func TestPaymentConfigService_SettingsLoadFailure(t *testing.T) {
	repo := &MockPaymentSettingsRepository{
		GetPaymentSettingsFn: func(ctx context.Context) (map[string]string, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := services.NewPaymentConfigService(repo)

	_, err := svc.AvailableMethods(context.Background(), "USA")
	assert.Error(t, err)

	_, err = svc.GatewayStatuses(context.Background())
	assert.Error(t, err)
}
