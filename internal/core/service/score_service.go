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

// SyntheticScore builds the placeholder snapshot served when the remote
// history is unreachable.
type SyntheticScore func(clientID string) *domain.CreditScore

// ScoreService implements credit-score use cases over the append-only
// history.
type ScoreService struct {
	repo      ports.ScoreRepository
	synthetic SyntheticScore
	logger    zerolog.Logger
}

func NewScoreService(repo ports.ScoreRepository, synthetic SyntheticScore, logger zerolog.Logger) *ScoreService {
	return &ScoreService{repo: repo, synthetic: synthetic, logger: logger}
}

func (s *ScoreService) History(ctx context.Context, clientID string) domain.Result[[]*domain.CreditScore] {
	scores, err := s.repo.ListByClient(ctx, clientID)
	if err == nil {
		return domain.Remote(scores)
	}

	metrics.RemoteErrorsTotal.WithLabelValues("credit_scores", "list").Inc()
	metrics.FallbacksTotal.WithLabelValues("credit_scores", "synthetic").Inc()
	s.logger.Warn().Err(err).Str("client_id", clientID).Msg("remote unavailable, returning synthetic score history")
	return domain.Degraded([]*domain.CreditScore{s.synthetic(clientID)}, err)
}

func (s *ScoreService) Latest(ctx context.Context, clientID string) domain.Result[*domain.CreditScore] {
	score, err := s.repo.Latest(ctx, clientID)
	if err == nil {
		return domain.Remote(score)
	}

	metrics.RemoteErrorsTotal.WithLabelValues("credit_scores", "get").Inc()
	metrics.FallbacksTotal.WithLabelValues("credit_scores", "synthetic").Inc()
	s.logger.Warn().Err(err).Str("client_id", clientID).Msg("remote unavailable, returning synthetic latest score")
	return domain.Degraded(s.synthetic(clientID), err)
}

func (s *ScoreService) Add(ctx context.Context, input ports.AddScoreInput) (domain.Result[*domain.CreditScore], error) {
	if input.ClientID == "" {
		return domain.Result[*domain.CreditScore]{}, fmt.Errorf("%w: client_id is required", domain.ErrInvalidInput)
	}
	for _, score := range []int{input.Equifax, input.Experian, input.TransUnion} {
		if score < 300 || score > 850 {
			return domain.Result[*domain.CreditScore]{}, fmt.Errorf("%w: bureau scores must be between 300 and 850", domain.ErrInvalidInput)
		}
	}

	now := time.Now().UTC()
	snapshot := &domain.CreditScore{
		ClientID:   input.ClientID,
		Equifax:    input.Equifax,
		Experian:   input.Experian,
		TransUnion: input.TransUnion,
		Average:    domain.AverageOf(input.Equifax, input.Experian, input.TransUnion),
		ScoreDate:  input.ScoreDate,
	}
	if snapshot.ScoreDate == "" {
		snapshot.ScoreDate = now.Format("2006-01-02")
	}

	created, err := s.repo.Create(ctx, snapshot)
	if err == nil {
		return domain.Remote(created), nil
	}

	metrics.RemoteErrorsTotal.WithLabelValues("credit_scores", "create").Inc()
	metrics.FallbacksTotal.WithLabelValues("credit_scores", "synthetic").Inc()
	s.logger.Warn().Err(err).Str("client_id", input.ClientID).Msg("remote unavailable, simulating score addition")
	snapshot.ID = "mock-" + uuid.NewString()
	snapshot.CreatedAt = now
	return domain.Degraded(snapshot, err), nil
}

// Delta computes the movement between the earliest and latest snapshot in
// the client's history.
func (s *ScoreService) Delta(ctx context.Context, clientID string) domain.Result[domain.ScoreDelta] {
	history := s.History(ctx, clientID)

	var initial, current *domain.CreditScore
	if n := len(history.Data); n > 0 {
		initial = history.Data[0]
		current = history.Data[n-1]
	}
	delta := domain.DeltaOf(initial, current)
	if history.FromFallback() {
		return domain.Degraded(delta, history.Cause)
	}
	return domain.Remote(delta)
}
