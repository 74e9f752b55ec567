package domain

// Region is a single subdivision (state, province, ...) of a country.
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CountrySettings is the immutable per-country formatting bundle used to
// render and validate applicant input. Values are looked up by ISO-ish
// three-letter code; unknown codes fall back to a default.
type CountrySettings struct {
	Code           string   `json:"code"`           // e.g., "USA"
	Name           string   `json:"name"`           // e.g., "United States"
	Currency       string   `json:"currency"`       // e.g., "USD"
	CurrencySymbol string   `json:"currencySymbol"` // e.g., "$"
	PhoneFormat    string   `json:"phoneFormat"`    // display placeholder, e.g., "(###) ###-####"
	PhonePattern   string   `json:"-"`              // validation regex
	PostalFormat   string   `json:"postalFormat"`
	PostalPattern  string   `json:"-"`
	TaxIDFormat    string   `json:"taxIdFormat"`
	TaxIDPattern   string   `json:"-"`
	TaxIDLabel     string   `json:"taxIdLabel"` // e.g., "SSN", "SIN"
	Timezone       string   `json:"timezone"`
	Regions        []Region `json:"regions"` // ordered for stable form rendering
}
