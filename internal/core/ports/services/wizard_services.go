package services

import (
	"context"

	"github.com/quickfunds/loanflow_backend/internal/core/domain"
	"github.com/quickfunds/loanflow_backend/internal/dto"
)

// WizardSvcFacade drives the two-step application wizard state machine.
type WizardSvcFacade interface {
	// BeginStep1 bootstraps the step-1 view: a fresh anti-forgery token
	// plus any previously saved draft values for re-editing.
	BeginStep1(ctx context.Context, sessionID, countryCode string) (*dto.Step1View, error)

	// SubmitStep1 validates a step-1 submission. A non-empty violation
	// list means step 1 is re-entered; on success the draft is saved and
	// the wizard advances to step 2.
	SubmitStep1(ctx context.Context, sessionID string, req dto.Step1Request) ([]domain.FieldViolation, error)

	// BeginStep2 bootstraps the step-2 view. It returns
	// apperrors.ErrStateRestart when step-1 data is missing.
	BeginStep2(ctx context.Context, sessionID string) (*dto.Step2View, error)

	// SaveStep2Recall stores step-2 field values in the side channel on an
	// explicit "back" action.
	SaveStep2Recall(ctx context.Context, sessionID string, recall domain.Step2Recall) error

	// SubmitStep2 validates a step-2 submission and, on success, hands off
	// to finalization. A non-empty violation list means step 2 is
	// re-entered. Returns apperrors.ErrStateRestart when step-1 data is
	// missing.
	SubmitStep2(ctx context.Context, sessionID string, req dto.Step2Request) (*domain.LoanApplication, []domain.FieldViolation, error)
}

// SubmissionSvcFacade finalizes a completed wizard run.
type SubmissionSvcFacade interface {
	// Finalize merges the accumulated draft with the step-2 fields,
	// replaces the plaintext password with a hash, assigns a unique
	// reference number and persists the record atomically. A concurrent
	// duplicate for the same wizard run short-circuits to the already
	// persisted application.
	Finalize(ctx context.Context, draft domain.ApplicantDraft, step2 domain.EmploymentDetails, consents domain.Consents, password string) (*domain.LoanApplication, error)

	// LookupByReference returns the application for a confirmation view,
	// or apperrors.ErrNotFound.
	LookupByReference(ctx context.Context, ref string) (*domain.LoanApplication, error)
}
