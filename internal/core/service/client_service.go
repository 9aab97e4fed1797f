package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/creditfix/credit-repair-api/internal/api/metrics"
	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// ClientService implements client-case use cases over the remote repository
// with the bundled fallback. Reads never fail the caller.
type ClientService struct {
	repo   ports.ClientRepository
	local  ports.LocalStore
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, local ports.LocalStore, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, local: local, logger: logger}
}

func (s *ClientService) List(ctx context.Context, filter ports.ClientFilter) domain.Result[[]*domain.Client] {
	clients, err := s.repo.List(ctx, filter)
	if err == nil {
		return domain.Remote(clients)
	}

	metrics.RemoteErrorsTotal.WithLabelValues("clients", "list").Inc()
	metrics.FallbacksTotal.WithLabelValues("clients", "local").Inc()
	s.logger.Warn().Err(err).Msg("remote unavailable, falling back to local clients")
	return domain.Degraded(filterClients(s.local.Clients(), filter), err)
}

func (s *ClientService) GetByID(ctx context.Context, id string) domain.Result[*domain.Client] {
	client, err := s.repo.FindByID(ctx, id)
	if err == nil {
		return domain.Remote(client)
	}
	if err == domain.ErrClientNotFound {
		return domain.Remote[*domain.Client](nil)
	}

	metrics.RemoteErrorsTotal.WithLabelValues("clients", "get").Inc()
	metrics.FallbacksTotal.WithLabelValues("clients", "local").Inc()
	s.logger.Warn().Err(err).Str("client_id", id).Msg("remote unavailable, falling back to local clients")
	for _, c := range s.local.Clients() {
		if c.ID == id {
			return domain.Degraded(c, err)
		}
	}
	return domain.Degraded[*domain.Client](nil, err)
}

func (s *ClientService) GetByUserID(ctx context.Context, userID string) domain.Result[*domain.Client] {
	client, err := s.repo.FindByUserID(ctx, userID)
	if err == nil {
		return domain.Remote(client)
	}
	if err == domain.ErrClientNotFound {
		return domain.Remote[*domain.Client](nil)
	}

	metrics.RemoteErrorsTotal.WithLabelValues("clients", "get").Inc()
	metrics.FallbacksTotal.WithLabelValues("clients", "local").Inc()
	s.logger.Warn().Err(err).Str("user_id", userID).Msg("remote unavailable, falling back to local clients")
	for _, c := range s.local.Clients() {
		if c.UserID == userID {
			return domain.Degraded(c, err)
		}
	}
	return domain.Degraded[*domain.Client](nil, err)
}

func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (domain.Result[*domain.Client], error) {
	if input.UserID == "" || input.PackageType == "" {
		return domain.Result[*domain.Client]{}, fmt.Errorf("%w: user_id and package_type are required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	client := &domain.Client{
		UserID:               input.UserID,
		CaseNumber:           input.CaseNumber,
		Status:               domain.CasePending,
		AssignedSpecialistID: input.AssignedSpecialistID,
		StartDate:            input.StartDate,
		PackageType:          input.PackageType,
		MonthlyFee:           input.MonthlyFee,
		ContractSigned:       input.ContractSigned,
		ContractSignedDate:   input.ContractSignedDate,
		PersonalInfo:         input.PersonalInfo,
	}
	if client.CaseNumber == "" {
		client.CaseNumber = generateCaseNumber()
	}
	if client.StartDate == "" {
		client.StartDate = now.Format("2006-01-02")
	}

	created, err := s.repo.Create(ctx, client)
	if err == nil {
		s.logger.Info().Str("client_id", created.ID).Str("case_number", created.CaseNumber).Msg("client created")
		return domain.Remote(created), nil
	}

	metrics.RemoteErrorsTotal.WithLabelValues("clients", "create").Inc()
	metrics.FallbacksTotal.WithLabelValues("clients", "synthetic").Inc()
	s.logger.Warn().Err(err).Msg("remote unavailable, simulating client creation")
	client.ID = "mock-" + uuid.NewString()
	client.CreatedAt = now
	client.UpdatedAt = now
	return domain.Degraded(client, err), nil
}

func (s *ClientService) Update(ctx context.Context, id string, updates ports.ClientUpdates) (domain.Result[*domain.Client], error) {
	if updates.Status != nil && !domain.ValidCaseStatus(*updates.Status) {
		return domain.Result[*domain.Client]{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *updates.Status)
	}

	client, err := s.repo.Update(ctx, id, updates)
	if err == nil {
		return domain.Remote(client), nil
	}
	if err == domain.ErrClientNotFound {
		return domain.Remote[*domain.Client](nil), nil
	}

	metrics.RemoteErrorsTotal.WithLabelValues("clients", "update").Inc()
	metrics.FallbacksTotal.WithLabelValues("clients", "synthetic").Inc()
	s.logger.Warn().Err(err).Str("client_id", id).Msg("remote unavailable, simulating client update")

	synth := &domain.Client{ID: id}
	for _, c := range s.local.Clients() {
		if c.ID == id {
			clone := *c
			synth = &clone
			break
		}
	}
	applyClientUpdates(synth, updates)
	synth.UpdatedAt = time.Now().UTC()
	return domain.Degraded(synth, err), nil
}

func applyClientUpdates(c *domain.Client, updates ports.ClientUpdates) {
	if updates.Status != nil {
		c.Status = *updates.Status
	}
	if updates.AssignedSpecialistID != nil {
		c.AssignedSpecialistID = *updates.AssignedSpecialistID
	}
	if updates.PackageType != nil {
		c.PackageType = *updates.PackageType
	}
	if updates.MonthlyFee != nil {
		c.MonthlyFee = *updates.MonthlyFee
	}
	if updates.ContractSigned != nil {
		c.ContractSigned = *updates.ContractSigned
	}
	if updates.ContractSignedDate != nil {
		c.ContractSignedDate = *updates.ContractSignedDate
	}
	if updates.PersonalInfo != nil {
		c.PersonalInfo = *updates.PersonalInfo
	}
}

func filterClients(clients []*domain.Client, filter ports.ClientFilter) []*domain.Client {
	out := make([]*domain.Client, 0, len(clients))
	search := strings.ToLower(filter.Search)
	for _, c := range clients {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.SpecialistID != "" && c.AssignedSpecialistID != filter.SpecialistID {
			continue
		}
		if search != "" && !matchesClient(c, search) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesClient(c *domain.Client, search string) bool {
	if strings.Contains(strings.ToLower(c.CaseNumber), search) {
		return true
	}
	if c.User != nil && strings.Contains(strings.ToLower(c.User.FullName()), search) {
		return true
	}
	return false
}

// generateCaseNumber returns a business case number in the format
// CASE-XXXXXXXX.
func generateCaseNumber() string {
	return "CASE-" + strings.ToUpper(uuid.NewString()[:8])
}
