package dto

import (
	"github.com/quickfunds/loanflow_backend/internal/core/domain"
	"github.com/quickfunds/loanflow_backend/internal/core/ports"
)

// Step1Request carries the step-1 form fields. Numeric fields arrive as
// strings so the field validator owns every check and violation ordering
// stays deterministic (gin binding would reject before our rules run).
type Step1Request struct {
	CSRFToken     string `json:"csrf_token"`
	Country       string `json:"country"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	DateOfBirth   string `json:"date_of_birth"`
	TaxID         string `json:"sin_ssn"`
	Address       string `json:"address"`
	City          string `json:"city"`
	StateProvince string `json:"state_province"`
	PostalZip     string `json:"postal_zip"`
	LoanAmount    string `json:"loan_amount"`
	LoanType      string `json:"loan_type"`
	LoanPurpose   string `json:"loan_purpose"`
}

// Step2Request carries the step-2 form fields. The password is consumed
// once at finalization and never echoed back.
type Step2Request struct {
	CSRFToken          string `json:"csrf_token"`
	MonthlyIncome      string `json:"monthly_income"`
	EmploymentStatus   string `json:"employment_status"`
	EmployerName       string `json:"employer_name"`
	EmploymentDuration string `json:"employment_duration"`
	ExistingDebts      string `json:"existing_debts"`
	Password           string `json:"password"`
	AgreeTerms         bool   `json:"agree_terms"`
	ConsentCreditCheck bool   `json:"consent_credit_check"`
	CaptchaAnswer      string `json:"captcha_answer"`
}

// Step1View bootstraps the step-1 form: formatting metadata, a fresh
// anti-forgery token and any previously entered values.
type Step1View struct {
	CSRFToken string                 `json:"csrf_token"`
	Country   domain.CountrySettings `json:"country"`
	MinAmount string                 `json:"min_amount"` // currency-formatted
	MaxAmount string                 `json:"max_amount"`
	Draft     *domain.ApplicantDraft `json:"draft,omitempty"`
}

// Step2View bootstraps the step-2 form. Recall holds side-channel values
// saved by a "back" action; the password is never part of it.
type Step2View struct {
	CSRFToken string                  `json:"csrf_token"`
	Captcha   *ports.CaptchaChallenge `json:"captcha,omitempty"`
	Draft     domain.ApplicantDraft   `json:"draft"`
	Recall    *domain.Step2Recall     `json:"recall,omitempty"`
}

// StepBackRequest carries the non-sensitive step-2 values preserved on an
// explicit "go back" action.
type StepBackRequest struct {
	MonthlyIncome      string `json:"monthly_income"`
	EmploymentStatus   string `json:"employment_status"`
	EmployerName       string `json:"employer_name"`
	EmploymentDuration string `json:"employment_duration"`
	ExistingDebts      string `json:"existing_debts"`
}

// ToRecall maps the request onto the domain side-channel value.
func (r StepBackRequest) ToRecall() domain.Step2Recall {
	return domain.Step2Recall{
		MonthlyIncome:      r.MonthlyIncome,
		EmploymentStatus:   r.EmploymentStatus,
		EmployerName:       r.EmployerName,
		EmploymentDuration: r.EmploymentDuration,
		ExistingDebts:      r.ExistingDebts,
	}
}

// ViolationsResponse is returned when a step submission is rejected and
// the originating step must be re-entered.
type ViolationsResponse struct {
	Errors []domain.FieldViolation `json:"errors"`
}

// SubmissionResponse is the confirmation payload surfaced on Completed.
type SubmissionResponse struct {
	ReferenceNumber string `json:"reference_number"`
	Status          string `json:"status"`
}

// SuccessViewResponse backs the confirmation page lookup.
type SuccessViewResponse struct {
	ReferenceNumber string `json:"reference_number"`
	FirstName       string `json:"first_name"`
	Email           string `json:"email"`
	Status          string `json:"status"`
	SubmittedAt     string `json:"submitted_at"`
}

// ToSubmissionResponse maps a persisted application to the wizard's
// confirmation payload.
func ToSubmissionResponse(app *domain.LoanApplication) SubmissionResponse {
	return SubmissionResponse{
		ReferenceNumber: app.ReferenceNumber,
		Status:          string(app.Status),
	}
}

// ToSuccessViewResponse maps a persisted application to the confirmation
// page payload.
func ToSuccessViewResponse(app *domain.LoanApplication) SuccessViewResponse {
	return SuccessViewResponse{
		ReferenceNumber: app.ReferenceNumber,
		FirstName:       app.Personal.FirstName,
		Email:           app.Personal.Email,
		Status:          string(app.Status),
		SubmittedAt:     app.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
