package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quickfunds/loanflow_backend/internal/apperrors"
	"github.com/quickfunds/loanflow_backend/internal/core/domain"
	"github.com/quickfunds/loanflow_backend/internal/core/ports"
	portssvc "github.com/quickfunds/loanflow_backend/internal/core/ports/services"
	"github.com/quickfunds/loanflow_backend/internal/dto"
)

// LoanApplicationFormID identifies the wizard's final form for the
// human-verification collaborator.
const LoanApplicationFormID = "loan_application"

// securityCheckViolation is surfaced for anti-forgery and
// human-verification failures alike; it deliberately does not reveal
// which check failed.
var securityCheckViolation = domain.FieldViolation{
	Field:   "form",
	Message: "Security verification failed. Please try again.",
}

// WizardService orchestrates the two-step application wizard. All state
// is session-scoped and injected; no persisted side effects occur before
// finalization.
type WizardService struct {
	drafts    ports.DraftStore
	tokens    ports.TokenService
	captcha   ports.HumanVerifier
	countries portssvc.CountrySvcFacade
	validator *FieldValidator
	finalizer portssvc.SubmissionSvcFacade
}

// NewWizardService creates a WizardService.
func NewWizardService(drafts ports.DraftStore, tokens ports.TokenService, captcha ports.HumanVerifier, countries portssvc.CountrySvcFacade, validator *FieldValidator, finalizer portssvc.SubmissionSvcFacade) *WizardService {
	return &WizardService{
		drafts:    drafts,
		tokens:    tokens,
		captcha:   captcha,
		countries: countries,
		validator: validator,
		finalizer: finalizer,
	}
}

// BeginStep1 bootstraps the step-1 view with country formatting metadata,
// a fresh anti-forgery token and any previously saved draft.
func (s *WizardService) BeginStep1(ctx context.Context, sessionID, countryCode string) (*dto.Step1View, error) {
	token, err := s.tokens.IssueToken(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue anti-forgery token: %w", err)
	}

	draft, err := s.drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	cs := s.countries.Settings(countryCode)
	return &dto.Step1View{
		CSRFToken: token,
		Country:   cs,
		MinAmount: s.countries.FormatCurrency(LoanAmountMin, cs.Code),
		MaxAmount: s.countries.FormatCurrency(LoanAmountMax, cs.Code),
		Draft:     draft,
	}, nil
}

// SubmitStep1 validates a step-1 submission and, on success, writes the
// draft into conversation state and advances the wizard to step 2. On
// failure step 1 is re-entered; the caller echoes all entered values back
// so nothing is lost.
func (s *WizardService) SubmitStep1(ctx context.Context, sessionID string, req dto.Step1Request) ([]domain.FieldViolation, error) {
	ok, err := s.tokens.VerifyToken(ctx, sessionID, req.CSRFToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify anti-forgery token: %w", err)
	}
	if !ok {
		return []domain.FieldViolation{securityCheckViolation}, nil
	}

	cs := s.countries.Settings(req.Country)
	if violations := s.validator.ValidateStep1(req, cs); len(violations) > 0 {
		return violations, nil
	}

	// Amount parses cleanly once validation passed.
	amount, err := decimal.NewFromString(req.LoanAmount)
	if err != nil {
		return nil, fmt.Errorf("loan amount unparseable after validation: %w", err)
	}

	draft := domain.ApplicantDraft{
		SessionID: sessionID,
		Personal: domain.PersonalDetails{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			Phone:       req.Phone,
			DateOfBirth: req.DateOfBirth,
			TaxID:       req.TaxID,
		},
		Address: domain.Address{
			Street:     req.Address,
			City:       req.City,
			RegionCode: req.StateProvince,
			PostalCode: req.PostalZip,
			Country:    cs.Code,
		},
		Loan: domain.LoanDetails{
			Amount:  amount,
			Type:    domain.LoanType(req.LoanType),
			Purpose: req.LoanPurpose,
		},
		SavedAt: time.Now().UTC(),
	}

	if err := s.drafts.SaveDraft(ctx, sessionID, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return nil, nil
}

// BeginStep2 bootstraps the step-2 view. Reaching step 2 without valid
// step-1 data forces a restart at step 1.
func (s *WizardService) BeginStep2(ctx context.Context, sessionID string) (*dto.Step2View, error) {
	draft, err := s.drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if draft == nil {
		return nil, apperrors.ErrStateRestart
	}

	token, err := s.tokens.IssueToken(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue anti-forgery token: %w", err)
	}

	recall, err := s.drafts.LoadStep2Recall(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load step-2 recall: %w", err)
	}

	view := &dto.Step2View{
		CSRFToken: token,
		Draft:     *draft,
		Recall:    recall,
	}

	if s.captcha.Required(LoanApplicationFormID) {
		challenge, err := s.captcha.Challenge(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to issue captcha challenge: %w", err)
		}
		view.Captcha = &challenge
	}

	return view, nil
}

// SaveStep2Recall preserves step-2 values in the side channel when the
// user explicitly goes back to step 1. The values are not merged into the
// draft.
func (s *WizardService) SaveStep2Recall(ctx context.Context, sessionID string, recall domain.Step2Recall) error {
	if err := s.drafts.SaveStep2Recall(ctx, sessionID, recall); err != nil {
		return fmt.Errorf("failed to save step-2 recall: %w", err)
	}
	return nil
}

// SubmitStep2 validates the final submission and hands off to the
// finalizer. Field and security failures re-enter step 2 with violations;
// the password is never echoed back.
func (s *WizardService) SubmitStep2(ctx context.Context, sessionID string, req dto.Step2Request) (*domain.LoanApplication, []domain.FieldViolation, error) {
	ok, err := s.tokens.VerifyToken(ctx, sessionID, req.CSRFToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to verify anti-forgery token: %w", err)
	}
	if !ok {
		return nil, []domain.FieldViolation{securityCheckViolation}, nil
	}

	draft, err := s.drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if draft == nil {
		return nil, nil, apperrors.ErrStateRestart
	}

	if violations := s.validator.ValidateStep2(req); len(violations) > 0 {
		return nil, violations, nil
	}

	if s.captcha.Required(LoanApplicationFormID) {
		human, err := s.captcha.Verify(ctx, sessionID, req.CaptchaAnswer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to verify captcha: %w", err)
		}
		if !human {
			return nil, []domain.FieldViolation{securityCheckViolation}, nil
		}
	}

	employment, consents := buildStep2Details(req)
	app, err := s.finalizer.Finalize(ctx, *draft, employment, consents, req.Password)
	if err != nil {
		return nil, nil, err
	}
	return app, nil, nil
}

// buildStep2Details maps validated step-2 fields onto typed domain
// values. Amounts parse cleanly because validation already ran.
func buildStep2Details(req dto.Step2Request) (domain.EmploymentDetails, domain.Consents) {
	income, _ := decimal.NewFromString(req.MonthlyIncome)
	debts := decimal.Zero
	if req.ExistingDebts != "" {
		debts, _ = decimal.NewFromString(req.ExistingDebts)
	}
	return domain.EmploymentDetails{
			MonthlyIncome: income,
			Status:        req.EmploymentStatus,
			EmployerName:  req.EmployerName,
			Duration:      req.EmploymentDuration,
			ExistingDebts: debts,
		}, domain.Consents{
			AgreeTerms:    req.AgreeTerms,
			CreditCheckOK: req.ConsentCreditCheck,
		}
}
