package ports

import (
	"context"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// AddScoreInput carries one new bureau snapshot. The average is derived, not
// supplied.
type AddScoreInput struct {
	ClientID   string
	Equifax    int
	Experian   int
	TransUnion int
	ScoreDate  string
}

// ScoreService defines use-case operations over a client's score history.
type ScoreService interface {
	History(ctx context.Context, clientID string) domain.Result[[]*domain.CreditScore]
	Latest(ctx context.Context, clientID string) domain.Result[*domain.CreditScore]
	Add(ctx context.Context, input AddScoreInput) (domain.Result[*domain.CreditScore], error)
	// Delta computes the movement between the earliest and latest snapshot.
	Delta(ctx context.Context, clientID string) domain.Result[domain.ScoreDelta]
}
