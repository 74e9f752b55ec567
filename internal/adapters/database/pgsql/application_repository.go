package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickfunds/loanflow_backend/internal/apperrors"
	"github.com/quickfunds/loanflow_backend/internal/core/domain"
	"github.com/quickfunds/loanflow_backend/internal/core/ports"
	"github.com/quickfunds/loanflow_backend/internal/models"
)

const uniqueViolationCode = "23505"

// PgxApplicationRepository persists loan applications with pgx.
type PgxApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a PgxApplicationRepository.
func NewApplicationRepository(db *pgxpool.Pool) ports.ApplicationRepository {
	return &PgxApplicationRepository{db: db}
}

var _ ports.ApplicationRepository = (*PgxApplicationRepository)(nil)

func toModelApplication(d domain.LoanApplication) models.LoanApplication {
	return models.LoanApplication{
		ApplicationID:      d.ApplicationID,
		ReferenceNumber:    d.ReferenceNumber,
		SubmissionKey:      d.SubmissionKey,
		FirstName:          d.Personal.FirstName,
		LastName:           d.Personal.LastName,
		Email:              d.Personal.Email,
		Phone:              d.Personal.Phone,
		DateOfBirth:        d.Personal.DateOfBirth,
		TaxID:              d.Personal.TaxID,
		Address:            d.Address.Street,
		City:               d.Address.City,
		StateProvince:      d.Address.RegionCode,
		PostalZip:          d.Address.PostalCode,
		Country:            d.Address.Country,
		LoanAmount:         d.Loan.Amount,
		LoanType:           string(d.Loan.Type),
		LoanPurpose:        d.Loan.Purpose,
		MonthlyIncome:      d.Employment.MonthlyIncome,
		EmploymentStatus:   d.Employment.Status,
		EmployerName:       d.Employment.EmployerName,
		EmploymentDuration: d.Employment.Duration,
		ExistingDebts:      d.Employment.ExistingDebts,
		AgreeTerms:         d.Consents.AgreeTerms,
		ConsentCreditCheck: d.Consents.CreditCheckOK,
		PasswordHash:       d.PasswordHash,
		Status:             string(d.Status),
		CreatedAt:          d.CreatedAt,
	}
}

func toDomainApplication(m models.LoanApplication) domain.LoanApplication {
	return domain.LoanApplication{
		ApplicationID:   m.ApplicationID,
		ReferenceNumber: m.ReferenceNumber,
		SubmissionKey:   m.SubmissionKey,
		Personal: domain.PersonalDetails{
			FirstName:   m.FirstName,
			LastName:    m.LastName,
			Email:       m.Email,
			Phone:       m.Phone,
			DateOfBirth: m.DateOfBirth,
			TaxID:       m.TaxID,
		},
		Address: domain.Address{
			Street:     m.Address,
			City:       m.City,
			RegionCode: m.StateProvince,
			PostalCode: m.PostalZip,
			Country:    m.Country,
		},
		Loan: domain.LoanDetails{
			Amount:  m.LoanAmount,
			Type:    domain.LoanType(m.LoanType),
			Purpose: m.LoanPurpose,
		},
		Employment: domain.EmploymentDetails{
			MonthlyIncome: m.MonthlyIncome,
			Status:        m.EmploymentStatus,
			EmployerName:  m.EmployerName,
			Duration:      m.EmploymentDuration,
			ExistingDebts: m.ExistingDebts,
		},
		Consents: domain.Consents{
			AgreeTerms:    m.AgreeTerms,
			CreditCheckOK: m.ConsentCreditCheck,
		},
		PasswordHash: m.PasswordHash,
		Status:       domain.ApplicationStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}

// SaveApplication inserts the full record as a single atomic write.
// Unique violations are mapped to the duplicate sentinels by constraint.
func (r *PgxApplicationRepository) SaveApplication(ctx context.Context, app domain.LoanApplication) error {
	m := toModelApplication(app)
	query := `
        INSERT INTO loan_applications (
            application_id, reference_number, submission_key,
            first_name, last_name, email, phone, date_of_birth, sin_ssn,
            address, city, state_province, postal_zip, country,
            loan_amount, loan_type, loan_purpose,
            monthly_income, employment_status, employer_name, employment_duration, existing_debts,
            agree_terms, consent_credit_check, password_hash, status, created_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
            $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
        );
    `
	_, err := r.db.Exec(ctx, query,
		m.ApplicationID, m.ReferenceNumber, m.SubmissionKey,
		m.FirstName, m.LastName, m.Email, m.Phone, m.DateOfBirth, m.TaxID,
		m.Address, m.City, m.StateProvince, m.PostalZip, m.Country,
		m.LoanAmount, m.LoanType, m.LoanPurpose,
		m.MonthlyIncome, m.EmploymentStatus, m.EmployerName, m.EmploymentDuration, m.ExistingDebts,
		m.AgreeTerms, m.ConsentCreditCheck, m.PasswordHash, m.Status, m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			if strings.Contains(pgErr.ConstraintName, "submission_key") {
				return fmt.Errorf("insert loan application: %w", apperrors.ErrDuplicateSubmission)
			}
			if strings.Contains(pgErr.ConstraintName, "reference_number") {
				return fmt.Errorf("insert loan application: %w", apperrors.ErrDuplicateReference)
			}
		}
		return fmt.Errorf("failed to insert loan application: %w", err)
	}
	return nil
}

const selectColumns = `
        application_id, reference_number, submission_key,
        first_name, last_name, email, phone, date_of_birth, sin_ssn,
        address, city, state_province, postal_zip, country,
        loan_amount, loan_type, loan_purpose,
        monthly_income, employment_status, employer_name, employment_duration, existing_debts,
        agree_terms, consent_credit_check, password_hash, status, created_at`

func (r *PgxApplicationRepository) findOne(ctx context.Context, where string, arg any) (*domain.LoanApplication, error) {
	query := "SELECT" + selectColumns + " FROM loan_applications WHERE " + where
	row := r.db.QueryRow(ctx, query, arg)

	var m models.LoanApplication
	err := row.Scan(
		&m.ApplicationID, &m.ReferenceNumber, &m.SubmissionKey,
		&m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.DateOfBirth, &m.TaxID,
		&m.Address, &m.City, &m.StateProvince, &m.PostalZip, &m.Country,
		&m.LoanAmount, &m.LoanType, &m.LoanPurpose,
		&m.MonthlyIncome, &m.EmploymentStatus, &m.EmployerName, &m.EmploymentDuration, &m.ExistingDebts,
		&m.AgreeTerms, &m.ConsentCreditCheck, &m.PasswordHash, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query loan application: %w", err)
	}
	app := toDomainApplication(m)
	return &app, nil
}

// FindBySubmissionKey loads the application created by an earlier
// finalization of the same wizard run.
func (r *PgxApplicationRepository) FindBySubmissionKey(ctx context.Context, key string) (*domain.LoanApplication, error) {
	return r.findOne(ctx, "submission_key = $1", key)
}

// FindByReference loads an application by its public reference number.
func (r *PgxApplicationRepository) FindByReference(ctx context.Context, ref string) (*domain.LoanApplication, error) {
	return r.findOne(ctx, "reference_number = $1", ref)
}

// ExistsByReference reports whether a reference number is taken.
func (r *PgxApplicationRepository) ExistsByReference(ctx context.Context, ref string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM loan_applications WHERE reference_number = $1)", ref).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reference number: %w", err)
	}
	return exists, nil
}
