package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

const defaultSessionTTL = 24 * time.Hour

// SessionStore records active sessions backed by Redis.
// Key format: session:<token>
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save records the session user under token, expiring after ttl.
func (s *SessionStore) Save(ctx context.Context, token string, user *domain.User, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	return s.client.Set(ctx, s.key(token), raw, ttl).Err()
}

// Find resolves the user behind token. Returns ErrSessionNotFound when the
// session is missing or expired.
func (s *SessionStore) Find(ctx context.Context, token string) (*domain.User, error) {
	raw, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode session user: %w", err)
	}
	return &user, nil
}

// Delete removes the session behind token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

func (s *SessionStore) key(token string) string {
	return "session:" + token
}
