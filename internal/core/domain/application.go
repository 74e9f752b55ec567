package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationStatus tracks the review lifecycle of a submitted application.
// Transitions after "pending" are driven by the admin review subsystem.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusApproved  ApplicationStatus = "approved"
	StatusRejected  ApplicationStatus = "rejected"
	StatusDisbursed ApplicationStatus = "disbursed"
)

// LoanType enumerates the loan products offered on the application form.
type LoanType string

const (
	LoanPersonal          LoanType = "personal"
	LoanDebtConsolidation LoanType = "debt_consolidation"
	LoanHomeRepair        LoanType = "home_repair"
	LoanAutomotive        LoanType = "automotive"
	LoanBusiness          LoanType = "business"
	LoanMedical           LoanType = "medical"
)

// ValidLoanType reports whether t is one of the offered loan products.
func ValidLoanType(t string) bool {
	switch LoanType(t) {
	case LoanPersonal, LoanDebtConsolidation, LoanHomeRepair, LoanAutomotive, LoanBusiness, LoanMedical:
		return true
	}
	return false
}

// PersonalDetails holds the step-1 identity fields.
type PersonalDetails struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	TaxID       string `json:"taxId"` // SSN/SIN/NINO/TFN depending on country
}

// Address holds the step-1 address fields. All optional on the form.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	RegionCode string `json:"regionCode"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"` // country code the applicant filled the form under
}

// LoanDetails holds the requested loan parameters from step 1.
type LoanDetails struct {
	Amount  decimal.Decimal `json:"amount"`
	Type    LoanType        `json:"type"`
	Purpose string          `json:"purpose"`
}

// EmploymentDetails holds the step-2 financial situation fields.
type EmploymentDetails struct {
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	Status        string          `json:"status"`
	EmployerName  string          `json:"employerName"`
	Duration      string          `json:"duration"`
	ExistingDebts decimal.Decimal `json:"existingDebts"`
}

// Consents holds the step-2 consent checkboxes. Both must be true to submit.
type Consents struct {
	AgreeTerms    bool `json:"agreeTerms"`
	CreditCheckOK bool `json:"creditCheckOk"`
}

// ApplicantDraft is the accumulated wizard input for one browsing session.
// It lives only in the conversation state store; the password never enters
// it in plaintext (it is hashed on the way into finalization).
type ApplicantDraft struct {
	SessionID string          `json:"sessionId"`
	Personal  PersonalDetails `json:"personal"`
	Address   Address         `json:"address"`
	Loan      LoanDetails     `json:"loan"`
	SavedAt   time.Time       `json:"savedAt"`
}

// Step2Recall is the short-lived side channel that repopulates step-2
// fields after an explicit "back" action. It never carries the password.
type Step2Recall struct {
	MonthlyIncome      string `json:"monthlyIncome"`
	EmploymentStatus   string `json:"employmentStatus"`
	EmployerName       string `json:"employerName"`
	EmploymentDuration string `json:"employmentDuration"`
	ExistingDebts      string `json:"existingDebts"`
}

// LoanApplication is the persisted record produced by finalization.
type LoanApplication struct {
	ApplicationID   string            `json:"applicationId"` // UUID
	ReferenceNumber string            `json:"referenceNumber"`
	SubmissionKey   string            `json:"-"` // wizard-run correlation key (session scoped)
	Personal        PersonalDetails   `json:"personal"`
	Address         Address           `json:"address"`
	Loan            LoanDetails       `json:"loan"`
	Employment      EmploymentDetails `json:"employment"`
	Consents        Consents          `json:"consents"`
	PasswordHash    string            `json:"-"`
	Status          ApplicationStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}
