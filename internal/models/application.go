package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanApplication is the database representation of a persisted
// application. Field order mirrors the loan_applications table.
type LoanApplication struct {
	ApplicationID      string          `db:"application_id"`
	ReferenceNumber    string          `db:"reference_number"`
	SubmissionKey      string          `db:"submission_key"`
	FirstName          string          `db:"first_name"`
	LastName           string          `db:"last_name"`
	Email              string          `db:"email"`
	Phone              string          `db:"phone"`
	DateOfBirth        string          `db:"date_of_birth"`
	TaxID              string          `db:"sin_ssn"`
	Address            string          `db:"address"`
	City               string          `db:"city"`
	StateProvince      string          `db:"state_province"`
	PostalZip          string          `db:"postal_zip"`
	Country            string          `db:"country"`
	LoanAmount         decimal.Decimal `db:"loan_amount"`
	LoanType           string          `db:"loan_type"`
	LoanPurpose        string          `db:"loan_purpose"`
	MonthlyIncome      decimal.Decimal `db:"monthly_income"`
	EmploymentStatus   string          `db:"employment_status"`
	EmployerName       string          `db:"employer_name"`
	EmploymentDuration string          `db:"employment_duration"`
	ExistingDebts      decimal.Decimal `db:"existing_debts"`
	AgreeTerms         bool            `db:"agree_terms"`
	ConsentCreditCheck bool            `db:"consent_credit_check"`
	PasswordHash       string          `db:"password_hash"`
	Status             string          `db:"status"`
	CreatedAt          time.Time       `db:"created_at"`
}
