package ports

import (
	"context"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// CreateItemInput carries all data needed to record a disputed entry.
type CreateItemInput struct {
	ClientID      string
	Type          string
	Creditor      string
	Account       string
	Amount        float64
	Bureau        string
	DisputeReason string
	DateReported  string
}

// NegativeItemService defines use-case operations for disputed items.
type NegativeItemService interface {
	ListByClient(ctx context.Context, clientID string) domain.Result[[]*domain.NegativeItem]
	Create(ctx context.Context, input CreateItemInput) (domain.Result[*domain.NegativeItem], error)
	// Update validates status transitions before touching the backend;
	// ErrInvalidTransition is a caller error, not a remote failure.
	Update(ctx context.Context, id string, updates ItemUpdates) (domain.Result[*domain.NegativeItem], error)
	Progress(ctx context.Context, clientID string) domain.Result[domain.ItemProgress]
}
