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

// SyntheticItem builds the placeholder negative item served when the remote
// list is unreachable.
type SyntheticItem func(clientID string) *domain.NegativeItem

// NegativeItemService implements dispute-item use cases.
type NegativeItemService struct {
	repo      ports.NegativeItemRepository
	synthetic SyntheticItem
	logger    zerolog.Logger
}

func NewNegativeItemService(repo ports.NegativeItemRepository, synthetic SyntheticItem, logger zerolog.Logger) *NegativeItemService {
	return &NegativeItemService{repo: repo, synthetic: synthetic, logger: logger}
}

func (s *NegativeItemService) ListByClient(ctx context.Context, clientID string) domain.Result[[]*domain.NegativeItem] {
	items, err := s.repo.ListByClient(ctx, clientID)
	if err == nil {
		return domain.Remote(items)
	}

	metrics.RemoteErrorsTotal.WithLabelValues("negative_items", "list").Inc()
	metrics.FallbacksTotal.WithLabelValues("negative_items", "synthetic").Inc()
	s.logger.Warn().Err(err).Str("client_id", clientID).Msg("remote unavailable, returning synthetic negative items")
	return domain.Degraded([]*domain.NegativeItem{s.synthetic(clientID)}, err)
}

func (s *NegativeItemService) Create(ctx context.Context, input ports.CreateItemInput) (domain.Result[*domain.NegativeItem], error) {
	if input.ClientID == "" || input.Creditor == "" || input.Bureau == "" {
		return domain.Result[*domain.NegativeItem]{}, fmt.Errorf("%w: client_id, creditor and bureau are required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	item := &domain.NegativeItem{
		ClientID:      input.ClientID,
		Type:          input.Type,
		Creditor:      input.Creditor,
		Account:       input.Account,
		Amount:        input.Amount,
		Status:        domain.ItemPending,
		Bureau:        input.Bureau,
		DisputeReason: input.DisputeReason,
		DateReported:  input.DateReported,
	}
	if item.DateReported == "" {
		item.DateReported = now.Format("2006-01-02")
	}

	created, err := s.repo.Create(ctx, item)
	if err == nil {
		return domain.Remote(created), nil
	}

	metrics.RemoteErrorsTotal.WithLabelValues("negative_items", "create").Inc()
	metrics.FallbacksTotal.WithLabelValues("negative_items", "synthetic").Inc()
	s.logger.Warn().Err(err).Str("client_id", input.ClientID).Msg("remote unavailable, simulating item creation")
	item.ID = "mock-" + uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now
	return domain.Degraded(item, err), nil
}

// Update applies item updates. A status change is validated against the
// dispute state machine when the current state is reachable; transitions to
// removed and in_progress stamp their dates.
func (s *NegativeItemService) Update(ctx context.Context, id string, updates ports.ItemUpdates) (domain.Result[*domain.NegativeItem], error) {
	today := time.Now().UTC().Format("2006-01-02")
	if updates.Status != nil {
		current, err := s.repo.FindByID(ctx, id)
		if err == domain.ErrItemNotFound {
			return domain.Remote[*domain.NegativeItem](nil), nil
		}
		if err == nil && !current.Status.CanTransitionTo(*updates.Status) {
			return domain.Result[*domain.NegativeItem]{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, *updates.Status)
		}
		switch *updates.Status {
		case domain.ItemRemoved:
			if updates.DateRemoved == nil {
				updates.DateRemoved = &today
			}
		case domain.ItemInProgress:
			if updates.LastDisputed == nil {
				updates.LastDisputed = &today
			}
		}
	}

	item, err := s.repo.Update(ctx, id, updates)
	if err == nil {
		return domain.Remote(item), nil
	}
	if err == domain.ErrItemNotFound {
		return domain.Remote[*domain.NegativeItem](nil), nil
	}

	metrics.RemoteErrorsTotal.WithLabelValues("negative_items", "update").Inc()
	metrics.FallbacksTotal.WithLabelValues("negative_items", "synthetic").Inc()
	s.logger.Warn().Err(err).Str("item_id", id).Msg("remote unavailable, simulating item update")

	synth := s.synthetic("")
	synth.ID = id
	if updates.Status != nil {
		synth.Status = *updates.Status
	}
	if updates.DisputeReason != nil {
		synth.DisputeReason = *updates.DisputeReason
	}
	if updates.DateRemoved != nil {
		synth.DateRemoved = *updates.DateRemoved
	}
	if updates.LastDisputed != nil {
		synth.LastDisputed = *updates.LastDisputed
	}
	synth.UpdatedAt = time.Now().UTC()
	return domain.Degraded(synth, err), nil
}

// Progress tallies the client's items by dispute status.
func (s *NegativeItemService) Progress(ctx context.Context, clientID string) domain.Result[domain.ItemProgress] {
	items := s.ListByClient(ctx, clientID)
	progress := domain.ProgressOf(items.Data)
	if items.FromFallback() {
		return domain.Degraded(progress, items.Cause)
	}
	return domain.Remote(progress)
}
