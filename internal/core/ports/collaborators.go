package ports

import (
	"context"

	"github.com/quickfunds/loanflow_backend/internal/core/domain"
)

// DraftStore is the conversation state store: it keeps in-progress wizard
// data keyed to a single browsing session across requests. TTL/expiry is
// the store's concern.
type DraftStore interface {
	// LoadDraft returns the session's draft, or nil when none exists.
	LoadDraft(ctx context.Context, sessionID string) (*domain.ApplicantDraft, error)
	SaveDraft(ctx context.Context, sessionID string, draft domain.ApplicantDraft) error
	ClearDraft(ctx context.Context, sessionID string) error

	// LoadStep2Recall returns the step-2 side channel, or nil when none
	// exists. The side channel is written on an explicit "back" action and
	// never merged into the draft.
	LoadStep2Recall(ctx context.Context, sessionID string) (*domain.Step2Recall, error)
	SaveStep2Recall(ctx context.Context, sessionID string, recall domain.Step2Recall) error
}

// TokenService issues and verifies anti-forgery tokens. Tokens are
// session-scoped and one-time: a successful Verify consumes the token.
type TokenService interface {
	IssueToken(ctx context.Context, sessionID string) (string, error)
	VerifyToken(ctx context.Context, sessionID, token string) (bool, error)
}

// CaptchaChallenge is a human-verification challenge presented alongside a
// protected form.
type CaptchaChallenge struct {
	Question string `json:"question"`
}

// HumanVerifier gates protected forms behind a human-verification
// challenge.
type HumanVerifier interface {
	// Required reports whether the given form is flagged as protected.
	Required(formID string) bool
	// Challenge issues a new challenge for the session.
	Challenge(ctx context.Context, sessionID string) (CaptchaChallenge, error)
	// Verify checks the session's outstanding challenge answer.
	Verify(ctx context.Context, sessionID, answer string) (bool, error)
}

// ConfirmationSender dispatches the post-submission confirmation
// notification. Implementations must respect the context deadline; the
// caller treats failures as non-fatal.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, email, firstName, referenceNumber string) error
}
