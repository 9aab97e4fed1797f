package ports

import (
	"context"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// ScoreRepository defines persistence operations on the credit_scores table.
// The table is an append-only time series per client.
type ScoreRepository interface {
	// ListByClient returns a client's snapshots ordered by score date ascending.
	ListByClient(ctx context.Context, clientID string) ([]*domain.CreditScore, error)
	// Latest returns the most recent snapshot, or nil when the client has no
	// history yet.
	Latest(ctx context.Context, clientID string) (*domain.CreditScore, error)
	Create(ctx context.Context, score *domain.CreditScore) (*domain.CreditScore, error)
}
