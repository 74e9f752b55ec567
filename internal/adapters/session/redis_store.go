// Package session implements the conversation state store on redis:
// in-progress wizard data keyed to a single browsing session, expiring on
// wizard abandonment.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickfunds/loanflow_backend/internal/core/domain"
	"github.com/quickfunds/loanflow_backend/internal/core/ports"
)

const (
	draftKeyPrefix  = "loanapp:draft:"
	recallKeyPrefix = "loanapp:step2recall:"
)

// RedisDraftStore holds wizard drafts and the step-2 side channel in
// redis with independent TTLs.
type RedisDraftStore struct {
	client    *redis.Client
	draftTTL  time.Duration
	recallTTL time.Duration
}

// NewRedisDraftStore creates a RedisDraftStore.
func NewRedisDraftStore(client *redis.Client, draftTTL, recallTTL time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, draftTTL: draftTTL, recallTTL: recallTTL}
}

var _ ports.DraftStore = (*RedisDraftStore)(nil)

// LoadDraft returns the session's draft, or nil when none exists.
func (s *RedisDraftStore) LoadDraft(ctx context.Context, sessionID string) (*domain.ApplicantDraft, error) {
	payload, err := s.client.Get(ctx, draftKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	var draft domain.ApplicantDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &draft, nil
}

// SaveDraft writes the draft, resetting the abandonment TTL.
func (s *RedisDraftStore) SaveDraft(ctx context.Context, sessionID string, draft domain.ApplicantDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+sessionID, payload, s.draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// ClearDraft removes the draft and its side channel.
func (s *RedisDraftStore) ClearDraft(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKeyPrefix+sessionID, recallKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}

// LoadStep2Recall returns the side channel, or nil when none exists.
func (s *RedisDraftStore) LoadStep2Recall(ctx context.Context, sessionID string) (*domain.Step2Recall, error) {
	payload, err := s.client.Get(ctx, recallKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load step-2 recall: %w", err)
	}
	var recall domain.Step2Recall
	if err := json.Unmarshal(payload, &recall); err != nil {
		return nil, fmt.Errorf("failed to decode step-2 recall: %w", err)
	}
	return &recall, nil
}

// SaveStep2Recall writes the side channel with its own short TTL.
func (s *RedisDraftStore) SaveStep2Recall(ctx context.Context, sessionID string, recall domain.Step2Recall) error {
	payload, err := json.Marshal(recall)
	if err != nil {
		return fmt.Errorf("failed to encode step-2 recall: %w", err)
	}
	if err := s.client.Set(ctx, recallKeyPrefix+sessionID, payload, s.recallTTL).Err(); err != nil {
		return fmt.Errorf("failed to save step-2 recall: %w", err)
	}
	return nil
}
