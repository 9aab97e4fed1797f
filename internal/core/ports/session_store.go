package ports

import (
	"context"
	"time"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// SessionStore records active sessions keyed by token. A session that cannot
// be found or read resolves to no user; sessions are never fabricated.
type SessionStore interface {
	Save(ctx context.Context, token string, user *domain.User, ttl time.Duration) error
	Find(ctx context.Context, token string) (*domain.User, error)
	Delete(ctx context.Context, token string) error
}
