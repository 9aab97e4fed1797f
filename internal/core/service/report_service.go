package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// ReportService derives dashboard and report aggregates from the entity
// services. Per-client history fetches target disjoint data and run
// concurrently.
type ReportService struct {
	clients ports.ClientService
	scores  ports.ScoreService
	items   ports.NegativeItemService
	logger  zerolog.Logger
}

func NewReportService(clients ports.ClientService, scores ports.ScoreService, items ports.NegativeItemService, logger zerolog.Logger) *ReportService {
	return &ReportService{clients: clients, scores: scores, items: items, logger: logger}
}

// Dashboard aggregates progress across the whole caseload.
func (s *ReportService) Dashboard(ctx context.Context) domain.Result[*ports.DashboardStats] {
	clients := s.clients.List(ctx, ports.ClientFilter{})

	progress := make([]ports.ClientProgress, len(clients.Data))
	degraded := make([]bool, len(clients.Data))

	var wg sync.WaitGroup
	for i, client := range clients.Data {
		wg.Add(1)
		go func(i int, client *domain.Client) {
			defer wg.Done()
			progress[i], degraded[i] = s.progressOf(ctx, client)
		}(i, client)
	}
	wg.Wait()

	stats := &ports.DashboardStats{
		TotalClients: len(clients.Data),
		Clients:      progress,
	}
	fromFallback := clients.FromFallback()
	cause := clients.Cause

	var improvementSum int
	for i, p := range progress {
		if clients.Data[i].Status == domain.CaseActive {
			stats.ActiveClients++
		}
		stats.TotalNegativeItems += p.ItemsTotal
		stats.RemovedItems += p.ItemsRemoved
		improvementSum += p.Improvement
		if degraded[i] {
			fromFallback = true
		}
	}
	if len(progress) > 0 {
		stats.AvgScoreImprovement = float64(improvementSum) / float64(len(progress))
	}
	if stats.TotalNegativeItems > 0 {
		stats.SuccessRate = stats.RemovedItems * 100 / stats.TotalNegativeItems
	}

	if fromFallback {
		return domain.Degraded(stats, cause)
	}
	return domain.Remote(stats)
}

// ClientProgress assembles one client's progress row.
func (s *ReportService) ClientProgress(ctx context.Context, clientID string) domain.Result[*ports.ClientProgress] {
	client := s.clients.GetByID(ctx, clientID)
	if client.Data == nil {
		if client.FromFallback() {
			return domain.Degraded[*ports.ClientProgress](nil, client.Cause)
		}
		return domain.Remote[*ports.ClientProgress](nil)
	}

	row, degraded := s.progressOf(ctx, client.Data)
	if client.FromFallback() || degraded {
		return domain.Degraded(&row, client.Cause)
	}
	return domain.Remote(&row)
}

// progressOf fetches a client's score delta and item progress. The two calls
// target disjoint tables and run concurrently.
func (s *ReportService) progressOf(ctx context.Context, client *domain.Client) (ports.ClientProgress, bool) {
	var (
		wg       sync.WaitGroup
		delta    domain.Result[domain.ScoreDelta]
		progress domain.Result[domain.ItemProgress]
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		delta = s.scores.Delta(ctx, client.ID)
	}()
	go func() {
		defer wg.Done()
		progress = s.items.Progress(ctx, client.ID)
	}()
	wg.Wait()

	row := ports.ClientProgress{
		ClientID:           client.ID,
		CaseNumber:         client.CaseNumber,
		Status:             string(client.Status),
		Improvement:        delta.Data.Points,
		ImprovementDisplay: delta.Data.Display(),
		ItemsTotal:         progress.Data.Total,
		ItemsRemoved:       progress.Data.Removed,
	}
	if client.User != nil {
		row.ClientName = client.User.FullName()
	}
	if delta.Data.Current != nil {
		row.CurrentScore = delta.Data.Current.Average
	}
	if delta.Data.Initial != nil {
		row.InitialScore = delta.Data.Initial.Average
	}
	return row, delta.FromFallback() || progress.FromFallback()
}
