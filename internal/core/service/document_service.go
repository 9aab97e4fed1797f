package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/creditfix/credit-repair-api/internal/api/metrics"
	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// SyntheticDocument builds the placeholder document served when the remote
// list is unreachable.
type SyntheticDocument func(clientID string) *domain.Document

// DocumentService implements stored-document use cases.
type DocumentService struct {
	repo      ports.DocumentRepository
	synthetic SyntheticDocument
	logger    zerolog.Logger
}

func NewDocumentService(repo ports.DocumentRepository, synthetic SyntheticDocument, logger zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, synthetic: synthetic, logger: logger}
}

func (s *DocumentService) List(ctx context.Context, clientID string) domain.Result[[]*domain.Document] {
	docs, err := s.repo.List(ctx, clientID)
	if err == nil {
		return domain.Remote(docs)
	}

	metrics.RemoteErrorsTotal.WithLabelValues("documents", "list").Inc()
	metrics.FallbacksTotal.WithLabelValues("documents", "synthetic").Inc()
	s.logger.Warn().Err(err).Str("client_id", clientID).Msg("remote unavailable, returning synthetic documents")
	return domain.Degraded([]*domain.Document{s.synthetic(clientID)}, err)
}

func (s *DocumentService) Upload(ctx context.Context, input ports.UploadDocumentInput) (domain.Result[*domain.Document], error) {
	if input.Name == "" || input.FilePath == "" {
		return domain.Result[*domain.Document]{}, fmt.Errorf("%w: name and file_path are required", domain.ErrInvalidInput)
	}

	doc := &domain.Document{
		ClientID:   input.ClientID,
		Name:       input.Name,
		Type:       input.Type,
		FilePath:   input.FilePath,
		FileSize:   input.FileSize,
		MimeType:   input.MimeType,
		UploadedBy: input.UploadedBy,
	}

	created, err := s.repo.Create(ctx, doc)
	if err == nil {
		return domain.Remote(created), nil
	}

	metrics.RemoteErrorsTotal.WithLabelValues("documents", "create").Inc()
	metrics.FallbacksTotal.WithLabelValues("documents", "synthetic").Inc()
	s.logger.Warn().Err(err).Msg("remote unavailable, simulating document upload")
	doc.ID = "mock-" + uuid.NewString()
	doc.CreatedAt = time.Now().UTC()
	return domain.Degraded(doc, err), nil
}
