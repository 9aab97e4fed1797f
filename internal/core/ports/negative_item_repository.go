package ports

import (
	"context"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// NegativeItemRepository defines persistence operations on the negative_items
// table.
type NegativeItemRepository interface {
	// ListByClient returns a client's items, newest first.
	ListByClient(ctx context.Context, clientID string) ([]*domain.NegativeItem, error)
	// ListAll returns every item joined with its client's user name, newest
	// first. Used to derive the dispute management view.
	ListAll(ctx context.Context) ([]*ItemWithClient, error)
	FindByID(ctx context.Context, id string) (*domain.NegativeItem, error)
	Create(ctx context.Context, item *domain.NegativeItem) (*domain.NegativeItem, error)
	Update(ctx context.Context, id string, updates ItemUpdates) (*domain.NegativeItem, error)
}

// ItemWithClient pairs a negative item with the display name of its client.
type ItemWithClient struct {
	Item       *domain.NegativeItem
	ClientName string
}

// ItemUpdates carries the mutable negative-item fields; nil means unchanged.
type ItemUpdates struct {
	Status        *domain.ItemStatus
	DisputeReason *string
	DateRemoved   *string
	LastDisputed  *string
}
