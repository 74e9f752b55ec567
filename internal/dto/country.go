package dto

import "github.com/quickfunds/loanflow_backend/internal/core/domain"

// CountryResponse is the form-rendering metadata for a country.
type CountryResponse struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Currency       string          `json:"currency"`
	CurrencySymbol string          `json:"currency_symbol"`
	PhoneFormat    string          `json:"phone_format"`
	PostalFormat   string          `json:"postal_format"`
	TaxIDFormat    string          `json:"tax_id_format"`
	TaxIDLabel     string          `json:"tax_id_label"`
	Regions        []domain.Region `json:"regions"`
}

// ToCountryResponse maps country settings for the public API.
func ToCountryResponse(cs domain.CountrySettings) CountryResponse {
	return CountryResponse{
		Code:           cs.Code,
		Name:           cs.Name,
		Currency:       cs.Currency,
		CurrencySymbol: cs.CurrencySymbol,
		PhoneFormat:    cs.PhoneFormat,
		PostalFormat:   cs.PostalFormat,
		TaxIDFormat:    cs.TaxIDFormat,
		TaxIDLabel:     cs.TaxIDLabel,
		Regions:        cs.Regions,
	}
}
