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

// SyntheticCommunication builds the placeholder message served when the
// remote list is unreachable.
type SyntheticCommunication func(clientID string) *domain.Communication

// CommunicationService implements client-message use cases.
type CommunicationService struct {
	repo      ports.CommunicationRepository
	synthetic SyntheticCommunication
	logger    zerolog.Logger
}

func NewCommunicationService(repo ports.CommunicationRepository, synthetic SyntheticCommunication, logger zerolog.Logger) *CommunicationService {
	return &CommunicationService{repo: repo, synthetic: synthetic, logger: logger}
}

func (s *CommunicationService) ListByClient(ctx context.Context, clientID string) domain.Result[[]*domain.Communication] {
	comms, err := s.repo.ListByClient(ctx, clientID)
	if err == nil {
		return domain.Remote(comms)
	}

	metrics.RemoteErrorsTotal.WithLabelValues("communications", "list").Inc()
	metrics.FallbacksTotal.WithLabelValues("communications", "synthetic").Inc()
	s.logger.Warn().Err(err).Str("client_id", clientID).Msg("remote unavailable, returning synthetic communications")
	return domain.Degraded([]*domain.Communication{s.synthetic(clientID)}, err)
}

func (s *CommunicationService) Create(ctx context.Context, input ports.CreateCommunicationInput) (domain.Result[*domain.Communication], error) {
	if input.ClientID == "" || !domain.ValidCommType(input.Type) {
		return domain.Result[*domain.Communication]{}, fmt.Errorf("%w: client_id and a valid type are required", domain.ErrInvalidInput)
	}

	comm := &domain.Communication{
		ClientID: input.ClientID,
		Type:     input.Type,
		Subject:  input.Subject,
		Content:  input.Content,
		SentBy:   input.SentBy,
		SentAt:   time.Now().UTC(),
		Status:   "sent",
	}

	created, err := s.repo.Create(ctx, comm)
	if err == nil {
		return domain.Remote(created), nil
	}

	metrics.RemoteErrorsTotal.WithLabelValues("communications", "create").Inc()
	metrics.FallbacksTotal.WithLabelValues("communications", "synthetic").Inc()
	s.logger.Warn().Err(err).Msg("remote unavailable, simulating communication creation")
	comm.ID = "mock-" + uuid.NewString()
	return domain.Degraded(comm, err), nil
}
