package services

import (
	"github.com/shopspring/decimal"

	"github.com/quickfunds/loanflow_backend/internal/core/domain"
	"github.com/quickfunds/loanflow_backend/internal/utils"
)

// DefaultCountryCode is used when a country code is unknown or absent.
const DefaultCountryCode = "USA"

// CountryService is the country settings provider: pure lookups over a
// static table, no mutation.
type CountryService struct {
	settings map[string]domain.CountrySettings
}

// NewCountryService creates a CountryService with the supported country
// table.
func NewCountryService() *CountryService {
	s := &CountryService{settings: make(map[string]domain.CountrySettings, len(countryTable))}
	for _, cs := range countryTable {
		s.settings[cs.Code] = cs
	}
	return s
}

// Settings returns the settings for the given country code, falling back
// to the default country for unknown codes.
func (s *CountryService) Settings(countryCode string) domain.CountrySettings {
	if cs, ok := s.settings[countryCode]; ok {
		return cs
	}
	return s.settings[DefaultCountryCode]
}

// Regions returns the ordered region subdivisions for the country.
func (s *CountryService) Regions(countryCode string) []domain.Region {
	return s.Settings(countryCode).Regions
}

// FormatCurrency renders an amount with the country's currency symbol and
// grouping convention.
func (s *CountryService) FormatCurrency(amount decimal.Decimal, countryCode string) string {
	return utils.FormatAmountWithSymbol(amount, s.Settings(countryCode).CurrencySymbol)
}

var countryTable = []domain.CountrySettings{
	{
		Code:           "USA",
		Name:           "United States",
		Currency:       "USD",
		CurrencySymbol: "$",
		PhoneFormat:    "(###) ###-####",
		PhonePattern:   `^\(\d{3}\) \d{3}-\d{4}$`,
		PostalFormat:   "#####-####",
		PostalPattern:  `^\d{5}(-\d{4})?$`,
		TaxIDFormat:    "###-##-####",
		TaxIDPattern:   `^\d{3}-\d{2}-\d{4}$`,
		TaxIDLabel:     "SSN",
		Timezone:       "America/New_York",
		Regions: []domain.Region{
			{Code: "AL", Name: "Alabama"}, {Code: "AK", Name: "Alaska"}, {Code: "AZ", Name: "Arizona"},
			{Code: "AR", Name: "Arkansas"}, {Code: "CA", Name: "California"}, {Code: "CO", Name: "Colorado"},
			{Code: "CT", Name: "Connecticut"}, {Code: "DE", Name: "Delaware"}, {Code: "FL", Name: "Florida"},
			{Code: "GA", Name: "Georgia"}, {Code: "HI", Name: "Hawaii"}, {Code: "ID", Name: "Idaho"},
			{Code: "IL", Name: "Illinois"}, {Code: "IN", Name: "Indiana"}, {Code: "IA", Name: "Iowa"},
			{Code: "KS", Name: "Kansas"}, {Code: "KY", Name: "Kentucky"}, {Code: "LA", Name: "Louisiana"},
			{Code: "ME", Name: "Maine"}, {Code: "MD", Name: "Maryland"}, {Code: "MA", Name: "Massachusetts"},
			{Code: "MI", Name: "Michigan"}, {Code: "MN", Name: "Minnesota"}, {Code: "MS", Name: "Mississippi"},
			{Code: "MO", Name: "Missouri"}, {Code: "MT", Name: "Montana"}, {Code: "NE", Name: "Nebraska"},
			{Code: "NV", Name: "Nevada"}, {Code: "NH", Name: "New Hampshire"}, {Code: "NJ", Name: "New Jersey"},
			{Code: "NM", Name: "New Mexico"}, {Code: "NY", Name: "New York"}, {Code: "NC", Name: "North Carolina"},
			{Code: "ND", Name: "North Dakota"}, {Code: "OH", Name: "Ohio"}, {Code: "OK", Name: "Oklahoma"},
			{Code: "OR", Name: "Oregon"}, {Code: "PA", Name: "Pennsylvania"}, {Code: "RI", Name: "Rhode Island"},
			{Code: "SC", Name: "South Carolina"}, {Code: "SD", Name: "South Dakota"}, {Code: "TN", Name: "Tennessee"},
			{Code: "TX", Name: "Texas"}, {Code: "UT", Name: "Utah"}, {Code: "VT", Name: "Vermont"},
			{Code: "VA", Name: "Virginia"}, {Code: "WA", Name: "Washington"}, {Code: "WV", Name: "West Virginia"},
			{Code: "WI", Name: "Wisconsin"}, {Code: "WY", Name: "Wyoming"},
		},
	},
	{
		Code:           "CAN",
		Name:           "Canada",
		Currency:       "CAD",
		CurrencySymbol: "C$",
		PhoneFormat:    "(###) ###-####",
		PhonePattern:   `^\(\d{3}\) \d{3}-\d{4}$`,
		PostalFormat:   "A#A #A#",
		PostalPattern:  `^[A-Za-z]\d[A-Za-z] \d[A-Za-z]\d$`,
		TaxIDFormat:    "###-###-###",
		TaxIDPattern:   `^\d{3}-\d{3}-\d{3}$`,
		TaxIDLabel:     "SIN",
		Timezone:       "America/Toronto",
		Regions: []domain.Region{
			{Code: "AB", Name: "Alberta"}, {Code: "BC", Name: "British Columbia"}, {Code: "MB", Name: "Manitoba"},
			{Code: "NB", Name: "New Brunswick"}, {Code: "NL", Name: "Newfoundland and Labrador"},
			{Code: "NS", Name: "Nova Scotia"}, {Code: "ON", Name: "Ontario"}, {Code: "PE", Name: "Prince Edward Island"},
			{Code: "QC", Name: "Quebec"}, {Code: "SK", Name: "Saskatchewan"}, {Code: "NT", Name: "Northwest Territories"},
			{Code: "NU", Name: "Nunavut"}, {Code: "YT", Name: "Yukon"},
		},
	},
	{
		Code:           "GBR",
		Name:           "United Kingdom",
		Currency:       "GBP",
		CurrencySymbol: "£",
		PhoneFormat:    "+44 #### ######",
		PhonePattern:   `^\+44 \d{4} \d{6}$`,
		PostalFormat:   "AA## #AA",
		PostalPattern:  `^[A-Za-z]{1,2}\d[A-Za-z\d]? \d[A-Za-z]{2}$`,
		TaxIDFormat:    "AA ##### A",
		TaxIDPattern:   `^[A-Za-z]{2} \d{6} [A-Za-z]$`,
		TaxIDLabel:     "NINO",
		Timezone:       "Europe/London",
		Regions: []domain.Region{
			{Code: "ENG", Name: "England"}, {Code: "SCT", Name: "Scotland"},
			{Code: "WLS", Name: "Wales"}, {Code: "NIR", Name: "Northern Ireland"},
		},
	},
	{
		Code:           "AUS",
		Name:           "Australia",
		Currency:       "AUD",
		CurrencySymbol: "A$",
		PhoneFormat:    "+61 # #### ####",
		PhonePattern:   `^\+61 \d \d{4} \d{4}$`,
		PostalFormat:   "####",
		PostalPattern:  `^\d{4}$`,
		TaxIDFormat:    "###-###-###",
		TaxIDPattern:   `^\d{3}-\d{3}-\d{3}$`,
		TaxIDLabel:     "TFN",
		Timezone:       "Australia/Sydney",
		Regions: []domain.Region{
			{Code: "NSW", Name: "New South Wales"}, {Code: "VIC", Name: "Victoria"}, {Code: "QLD", Name: "Queensland"},
			{Code: "WA", Name: "Western Australia"}, {Code: "SA", Name: "South Australia"}, {Code: "TAS", Name: "Tasmania"},
			{Code: "ACT", Name: "Australian Capital Territory"}, {Code: "NT", Name: "Northern Territory"},
		},
	},
}
