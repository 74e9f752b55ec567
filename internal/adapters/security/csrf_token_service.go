// Package security implements the request-forgery token service and the
// human verification challenge on redis.
package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickfunds/loanflow_backend/internal/core/ports"
	"github.com/quickfunds/loanflow_backend/internal/utils"
)

const csrfKeyPrefix = "loanapp:csrf:"

// csrfTokenBytes gives 64 hex chars per token.
const csrfTokenBytes = 32

// RedisTokenService issues session-scoped anti-forgery tokens backed by
// redis. Verification consumes the token, so a replayed form post fails
// even when the first one succeeded.
type RedisTokenService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTokenService creates a RedisTokenService.
func NewRedisTokenService(client *redis.Client, ttl time.Duration) *RedisTokenService {
	return &RedisTokenService{client: client, ttl: ttl}
}

var _ ports.TokenService = (*RedisTokenService)(nil)

// IssueToken mints a fresh token for the session, replacing any prior one.
func (s *RedisTokenService) IssueToken(ctx context.Context, sessionID string) (string, error) {
	token, err := utils.GenerateSecureRandomString(csrfTokenBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate csrf token: %w", err)
	}
	if err := s.client.Set(ctx, csrfKeyPrefix+sessionID, token, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store csrf token: %w", err)
	}
	return token, nil
}

// VerifyToken checks the presented token against the session's stored one
// and consumes it. A missing, expired, or mismatched token verifies false
// without error.
func (s *RedisTokenService) VerifyToken(ctx context.Context, sessionID, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	stored, err := s.client.GetDel(ctx, csrfKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read csrf token: %w", err)
	}
	return stored == token, nil
}
