package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/quickfunds/loanflow_backend/internal/core/domain"
)

// PaymentConfigSvcFacade resolves which payment methods and gateways are
// safe to expose given the current administrator configuration.
type PaymentConfigSvcFacade interface {
	// AvailableMethods returns the method categories offered for the
	// billing country. The card category is omitted entirely when no
	// gateway is available.
	AvailableMethods(ctx context.Context, countryCode string) ([]domain.MethodOption, error)

	// AvailableGateways returns the gateways that are enabled and fully
	// credentialed.
	AvailableGateways(ctx context.Context) ([]domain.GatewayConfig, error)

	// GatewayStatuses returns the diagnostic view of every configured
	// gateway for administrative troubleshooting.
	GatewayStatuses(ctx context.Context) ([]domain.GatewayStatus, error)
}

// CountrySvcFacade is the country settings provider: pure lookups of
// formatting rules and region subdivisions.
type CountrySvcFacade interface {
	Settings(countryCode string) domain.CountrySettings
	Regions(countryCode string) []domain.Region
	// FormatCurrency renders an amount using the country's symbol and
	// grouping convention, e.g. 1000 -> "$1,000" for USA.
	FormatCurrency(amount decimal.Decimal, countryCode string) string
}
