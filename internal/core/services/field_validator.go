package services

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/quickfunds/loanflow_backend/internal/core/domain"
	"github.com/quickfunds/loanflow_backend/internal/dto"
	"github.com/quickfunds/loanflow_backend/internal/utils"
)

// Loan amount bounds form a closed interval; submissions outside it are
// rejected with a currency-localized message.
var (
	LoanAmountMin = decimal.NewFromInt(1000)
	LoanAmountMax = decimal.NewFromInt(150000)
)

// MinPasswordLength is the shortest password accepted at step 2.
const MinPasswordLength = 8

// FieldValidator applies the declarative per-step rule sets. Rule
// execution order is fixed (personal before address before loan before
// cross-field) so violation lists are deterministic.
type FieldValidator struct {
	validate *validator.Validate

	mu       sync.Mutex
	patterns map[string]*regexp.Regexp
}

// NewFieldValidator creates a FieldValidator.
func NewFieldValidator() *FieldValidator {
	return &FieldValidator{
		validate: validator.New(),
		patterns: make(map[string]*regexp.Regexp),
	}
}

// stringRule is one ordered entry of a step's rule set.
type stringRule struct {
	field   string
	value   string
	tag     string // validator/v10 tag, e.g. "required", "email"
	message string
}

// ValidateStep1 checks the personal, address and loan fields of a step-1
// submission against the country's formatting rules.
func (v *FieldValidator) ValidateStep1(req dto.Step1Request, cs domain.CountrySettings) []domain.FieldViolation {
	var violations []domain.FieldViolation

	// Personal fields first.
	rules := []stringRule{
		{"first_name", req.FirstName, "required", "First name is required"},
		{"last_name", req.LastName, "required", "Last name is required"},
		{"email", req.Email, "required", "Email address is required"},
		// The well-formedness check is independent of the required check;
		// both may fire for the same submission.
		{"email", req.Email, "email", "Please enter a valid email address"},
		{"phone", req.Phone, "required", "Phone number is required"},
		{"date_of_birth", req.DateOfBirth, "required", "Date of birth is required"},
	}
	violations = v.applyRules(violations, rules)

	if req.Phone != "" && !v.matches(cs.PhonePattern, req.Phone) {
		violations = append(violations, domain.FieldViolation{
			Field: "phone", Message: "Phone number must match the format " + cs.PhoneFormat,
		})
	}
	if req.TaxID != "" && !v.matches(cs.TaxIDPattern, req.TaxID) {
		violations = append(violations, domain.FieldViolation{
			Field: "sin_ssn", Message: cs.TaxIDLabel + " must match the format " + cs.TaxIDFormat,
		})
	}

	// Address fields. All optional; only formats are enforced.
	if req.PostalZip != "" && !v.matches(cs.PostalPattern, req.PostalZip) {
		violations = append(violations, domain.FieldViolation{
			Field: "postal_zip", Message: "Postal code must match the format " + cs.PostalFormat,
		})
	}

	// Loan fields last.
	if req.LoanAmount == "" {
		violations = append(violations, domain.FieldViolation{Field: "loan_amount", Message: "Loan amount is required"})
	} else if amount, err := decimal.NewFromString(req.LoanAmount); err != nil {
		violations = append(violations, domain.FieldViolation{Field: "loan_amount", Message: "Loan amount must be a number"})
	} else if amount.LessThan(LoanAmountMin) || amount.GreaterThan(LoanAmountMax) {
		violations = append(violations, domain.FieldViolation{
			Field: "loan_amount",
			Message: "Loan amount must be between " +
				utils.FormatAmountWithSymbol(LoanAmountMin, cs.CurrencySymbol) + " and " +
				utils.FormatAmountWithSymbol(LoanAmountMax, cs.CurrencySymbol),
		})
	}

	if req.LoanType == "" {
		violations = append(violations, domain.FieldViolation{Field: "loan_type", Message: "Loan type is required"})
	} else if !domain.ValidLoanType(req.LoanType) {
		violations = append(violations, domain.FieldViolation{Field: "loan_type", Message: "Please select a valid loan type"})
	}

	return violations
}

// ValidateStep2 checks the employment, credential and consent fields of a
// step-2 submission.
func (v *FieldValidator) ValidateStep2(req dto.Step2Request) []domain.FieldViolation {
	var violations []domain.FieldViolation

	if req.MonthlyIncome == "" {
		violations = append(violations, domain.FieldViolation{Field: "monthly_income", Message: "Monthly income is required"})
	} else if income, err := decimal.NewFromString(req.MonthlyIncome); err != nil {
		violations = append(violations, domain.FieldViolation{Field: "monthly_income", Message: "Monthly income must be a number"})
	} else if income.IsNegative() {
		violations = append(violations, domain.FieldViolation{Field: "monthly_income", Message: "Monthly income must be a positive number"})
	}

	if req.ExistingDebts != "" {
		if debts, err := decimal.NewFromString(req.ExistingDebts); err != nil {
			violations = append(violations, domain.FieldViolation{Field: "existing_debts", Message: "Existing debts must be a number"})
		} else if debts.IsNegative() {
			violations = append(violations, domain.FieldViolation{Field: "existing_debts", Message: "Existing debts must be a positive number"})
		}
	}

	if req.Password == "" {
		violations = append(violations, domain.FieldViolation{Field: "password", Message: "Password is required"})
	} else if len(req.Password) < MinPasswordLength {
		violations = append(violations, domain.FieldViolation{Field: "password", Message: "Password must be at least 8 characters long"})
	}

	if !req.AgreeTerms {
		violations = append(violations, domain.FieldViolation{Field: "agree_terms", Message: "You must agree to the terms and conditions"})
	}
	if !req.ConsentCreditCheck {
		violations = append(violations, domain.FieldViolation{Field: "consent_credit_check", Message: "You must consent to credit check"})
	}

	return violations
}

func (v *FieldValidator) applyRules(violations []domain.FieldViolation, rules []stringRule) []domain.FieldViolation {
	for _, r := range rules {
		if err := v.validate.Var(r.value, r.tag); err != nil {
			violations = append(violations, domain.FieldViolation{Field: r.field, Message: r.message})
		}
	}
	return violations
}

func (v *FieldValidator) matches(pattern, value string) bool {
	if pattern == "" {
		return true
	}
	v.mu.Lock()
	re, ok := v.patterns[pattern]
	if !ok {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			v.mu.Unlock()
			return true // an unusable pattern never blocks submission
		}
		v.patterns[pattern] = re
	}
	v.mu.Unlock()
	return re.MatchString(value)
}
