package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickfunds/loanflow_backend/internal/core/services"
)

func TestCountrySettings_SupportedCountries(t *testing.T) {
	svc := services.NewCountryService()

	tests := []struct {
		code       string
		symbol     string
		taxIDLabel string
		regions    int
	}{
		{"USA", "$", "SSN", 50},
		{"CAN", "C$", "SIN", 13},
		{"GBR", "£", "NINO", 4},
		{"AUS", "A$", "TFN", 8},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			cs := svc.Settings(tc.code)
			assert.Equal(t, tc.code, cs.Code)
			assert.Equal(t, tc.symbol, cs.CurrencySymbol)
			assert.Equal(t, tc.taxIDLabel, cs.TaxIDLabel)
			assert.Len(t, cs.Regions, tc.regions)
		})
	}
}

func TestCountrySettings_UnknownCodeFallsBack(t *testing.T) {
	svc := services.NewCountryService()

	for _, code := range []string{"", "DEU", "usa"} {
		cs := svc.Settings(code)
		assert.Equal(t, services.DefaultCountryCode, cs.Code, "code %q", code)
	}
}

func TestCountryRegions_Ordered(t *testing.T) {
	svc := services.NewCountryService()

	regions := svc.Regions("GBR")
	require.Len(t, regions, 4)
	assert.Equal(t, "ENG", regions[0].Code)
	assert.Equal(t, "England", regions[0].Name)
}

func TestFormatCurrency(t *testing.T) {
	svc := services.NewCountryService()

	tests := []struct {
		amount  string
		country string
		want    string
	}{
		{"1000", "USA", "$1,000"},
		{"150000", "USA", "$150,000"},
		{"1234.5", "CAN", "C$1,234.50"},
		{"999.99", "GBR", "£999.99"},
		{"5000", "AUS", "A$5,000"},
		{"5000", "XXX", "$5,000"}, // unknown falls back to default
	}

	for _, tc := range tests {
		amount := decimal.RequireFromString(tc.amount)
		assert.Equal(t, tc.want, svc.FormatCurrency(amount, tc.country))
	}
}
