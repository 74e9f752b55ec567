package ports

import (
	"context"

	"github.com/quickfunds/loanflow_backend/internal/core/domain"
)

// ApplicationRepository defines the persistence operations for finalized
// loan applications. SaveApplication must be a single atomic write.
type ApplicationRepository interface {
	// SaveApplication inserts the full record. It returns
	// apperrors.ErrDuplicateSubmission when an application with the same
	// submission key already exists, and apperrors.ErrDuplicateReference
	// when the reference number is already taken.
	SaveApplication(ctx context.Context, app domain.LoanApplication) error

	// FindBySubmissionKey loads the application created by an earlier
	// finalization of the same wizard run, or nil if none exists.
	FindBySubmissionKey(ctx context.Context, key string) (*domain.LoanApplication, error)

	// FindByReference loads an application by its public reference number,
	// or nil if none exists.
	FindByReference(ctx context.Context, ref string) (*domain.LoanApplication, error)

	// ExistsByReference reports whether a reference number is taken.
	ExistsByReference(ctx context.Context, ref string) (bool, error)
}

// PaymentSettingsRepository exposes the administrator-authored payment
// configuration as a read-only key/value snapshot.
type PaymentSettingsRepository interface {
	GetPaymentSettings(ctx context.Context) (map[string]string, error)
}
