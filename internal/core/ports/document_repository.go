package ports

import (
	"context"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// DocumentRepository defines persistence operations on the documents table.
type DocumentRepository interface {
	// List returns documents newest first. Empty clientID lists every
	// document including global compliance files.
	List(ctx context.Context, clientID string) ([]*domain.Document, error)
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
}

// CommunicationRepository defines persistence operations on the
// communications table.
type CommunicationRepository interface {
	// ListByClient returns a client's messages, newest first.
	ListByClient(ctx context.Context, clientID string) ([]*domain.Communication, error)
	Create(ctx context.Context, comm *domain.Communication) (*domain.Communication, error)
}
