package ports

import (
	"context"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// UploadDocumentInput records file metadata after an upload. The file body
// itself lives in object storage referenced by FilePath.
type UploadDocumentInput struct {
	ClientID   string
	Name       string
	Type       string
	FilePath   string
	FileSize   int64
	MimeType   string
	UploadedBy string
}

// DocumentService defines use-case operations for stored documents.
type DocumentService interface {
	List(ctx context.Context, clientID string) domain.Result[[]*domain.Document]
	Upload(ctx context.Context, input UploadDocumentInput) (domain.Result[*domain.Document], error)
}

// CreateCommunicationInput records one outbound or inbound message.
type CreateCommunicationInput struct {
	ClientID string
	Type     string
	Subject  string
	Content  string
	SentBy   string
}

// CommunicationService defines use-case operations for client messages.
type CommunicationService interface {
	ListByClient(ctx context.Context, clientID string) domain.Result[[]*domain.Communication]
	Create(ctx context.Context, input CreateCommunicationInput) (domain.Result[*domain.Communication], error)
}
