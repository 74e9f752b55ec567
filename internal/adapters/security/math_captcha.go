package security

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickfunds/loanflow_backend/internal/core/ports"
)

const captchaKeyPrefix = "loanapp:captcha:"

// MathCaptcha poses a small arithmetic question and keeps the expected
// answer in redis until the form comes back. Only forms named in the
// protected set require it.
type MathCaptcha struct {
	client         *redis.Client
	ttl            time.Duration
	protectedForms map[string]struct{}
}

// NewMathCaptcha creates a MathCaptcha protecting the given form IDs.
func NewMathCaptcha(client *redis.Client, ttl time.Duration, protectedForms []string) *MathCaptcha {
	protected := make(map[string]struct{}, len(protectedForms))
	for _, f := range protectedForms {
		protected[f] = struct{}{}
	}
	return &MathCaptcha{client: client, ttl: ttl, protectedForms: protected}
}

var _ ports.HumanVerifier = (*MathCaptcha)(nil)

// Required reports whether the form is in the protected set.
func (m *MathCaptcha) Required(formID string) bool {
	_, ok := m.protectedForms[formID]
	return ok
}

// Challenge issues a fresh addition question for the session, replacing
// any outstanding one.
func (m *MathCaptcha) Challenge(ctx context.Context, sessionID string) (ports.CaptchaChallenge, error) {
	a, err := randomOperand()
	if err != nil {
		return ports.CaptchaChallenge{}, err
	}
	b, err := randomOperand()
	if err != nil {
		return ports.CaptchaChallenge{}, err
	}

	answer := strconv.Itoa(a + b)
	if err := m.client.Set(ctx, captchaKeyPrefix+sessionID, answer, m.ttl).Err(); err != nil {
		return ports.CaptchaChallenge{}, fmt.Errorf("failed to store captcha answer: %w", err)
	}
	return ports.CaptchaChallenge{Question: fmt.Sprintf("What is %d + %d?", a, b)}, nil
}

// Verify checks the answer against the session's outstanding challenge
// and consumes it. A missing or expired challenge verifies false.
func (m *MathCaptcha) Verify(ctx context.Context, sessionID, answer string) (bool, error) {
	expected, err := m.client.GetDel(ctx, captchaKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read captcha answer: %w", err)
	}
	return strings.TrimSpace(answer) == expected, nil
}

// randomOperand picks an integer in [1, 10].
func randomOperand() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10))
	if err != nil {
		return 0, fmt.Errorf("failed to generate captcha operand: %w", err)
	}
	return int(n.Int64()) + 1, nil
}
