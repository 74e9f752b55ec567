package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quickfunds/loanflow_backend/internal/apperrors"
	"github.com/quickfunds/loanflow_backend/internal/core/domain"
	"github.com/quickfunds/loanflow_backend/internal/core/ports"
	"github.com/quickfunds/loanflow_backend/internal/utils"
)

// referenceAttempts bounds regeneration on reference-number collisions.
const referenceAttempts = 8

// SubmissionService finalizes a completed wizard run: it merges the
// accumulated draft into one record, assigns a unique reference number,
// persists it atomically and dispatches the confirmation notification.
type SubmissionService struct {
	apps          ports.ApplicationRepository
	drafts        ports.DraftStore
	sender        ports.ConfirmationSender
	logger        *slog.Logger
	notifyTimeout time.Duration
}

// NewSubmissionService creates a SubmissionService.
func NewSubmissionService(apps ports.ApplicationRepository, drafts ports.DraftStore, sender ports.ConfirmationSender, logger *slog.Logger, notifyTimeout time.Duration) *SubmissionService {
	return &SubmissionService{
		apps:          apps,
		drafts:        drafts,
		sender:        sender,
		logger:        logger,
		notifyTimeout: notifyTimeout,
	}
}

// Finalize produces exactly one persisted LoanApplication per wizard run.
// A duplicate attempt for the same session short-circuits to the already
// persisted record and reports the same reference number. The plaintext
// password is hashed before any persistence and never logged.
func (s *SubmissionService) Finalize(ctx context.Context, draft domain.ApplicantDraft, step2 domain.EmploymentDetails, consents domain.Consents, password string) (*domain.LoanApplication, error) {
	if existing, err := s.apps.FindBySubmissionKey(ctx, draft.SessionID); err != nil {
		return nil, fmt.Errorf("failed to check for prior submission: %w", err)
	} else if existing != nil {
		return existing, nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	app := domain.LoanApplication{
		ApplicationID: uuid.NewString(),
		SubmissionKey: draft.SessionID,
		Personal:      draft.Personal,
		Address:       draft.Address,
		Loan:          draft.Loan,
		Employment:    step2,
		Consents:      consents,
		PasswordHash:  hash,
		Status:        domain.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	persisted, err := s.persistWithReference(ctx, app)
	if err != nil {
		// Draft intentionally left intact so the user can retry.
		return nil, err
	}

	s.dispatchConfirmation(persisted)

	// The draft is cleared irreversibly; a failure here only means the
	// store will expire it on its own.
	if err := s.drafts.ClearDraft(ctx, draft.SessionID); err != nil {
		s.logger.Warn("Failed to clear draft after finalization",
			slog.String("session_id", draft.SessionID), slog.String("error", err.Error()))
	}

	return persisted, nil
}

// persistWithReference allocates an available reference number and writes
// the record, regenerating on reference collisions and short-circuiting
// when a concurrent duplicate submission won the race.
func (s *SubmissionService) persistWithReference(ctx context.Context, app domain.LoanApplication) (*domain.LoanApplication, error) {
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		ref, err := utils.GenerateReferenceNumber()
		if err != nil {
			return nil, fmt.Errorf("failed to generate reference number: %w", err)
		}

		taken, err := s.apps.ExistsByReference(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("failed to check reference availability: %w", err)
		}
		if taken {
			continue
		}

		app.ReferenceNumber = ref
		err = s.apps.SaveApplication(ctx, app)
		if err == nil {
			return &app, nil
		}
		if errors.Is(err, apperrors.ErrDuplicateReference) {
			continue
		}
		if errors.Is(err, apperrors.ErrDuplicateSubmission) {
			existing, findErr := s.apps.FindBySubmissionKey(ctx, app.SubmissionKey)
			if findErr != nil {
				return nil, fmt.Errorf("failed to load application after duplicate submission: %w", findErr)
			}
			if existing == nil {
				return nil, fmt.Errorf("duplicate submission reported but no record found: %w", apperrors.ErrPersistence)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to persist application: %w", err)
	}
	return nil, fmt.Errorf("exhausted reference number attempts: %w", apperrors.ErrPersistence)
}

// dispatchConfirmation sends the confirmation email without blocking the
// user-visible success response. Failure is logged, never surfaced.
func (s *SubmissionService) dispatchConfirmation(app *domain.LoanApplication) {
	email := app.Personal.Email
	name := app.Personal.FirstName
	ref := app.ReferenceNumber
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		if err := s.sender.SendConfirmation(ctx, email, name, ref); err != nil {
			s.logger.Error("Failed to send confirmation email",
				slog.String("reference_number", ref), slog.String("error", err.Error()))
		}
	}()
}

// LookupByReference returns the application behind a confirmation view.
func (s *SubmissionService) LookupByReference(ctx context.Context, ref string) (*domain.LoanApplication, error) {
	app, err := s.apps.FindByReference(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to look up application by reference: %w", err)
	}
	if app == nil {
		return nil, apperrors.ErrNotFound
	}
	return app, nil
}
