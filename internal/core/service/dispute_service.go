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

// defaultTemplateID is stamped on disputes derived from items that carry no
// template reference of their own.
const defaultTemplateID = "template-001"

// DisputeService serves reusable letter templates and the dispute view
// derived from negative items.
type DisputeService struct {
	templates ports.TemplateRepository
	items     ports.NegativeItemRepository
	local     ports.LocalStore
	logger    zerolog.Logger
}

func NewDisputeService(templates ports.TemplateRepository, items ports.NegativeItemRepository, local ports.LocalStore, logger zerolog.Logger) *DisputeService {
	return &DisputeService{templates: templates, items: items, local: local, logger: logger}
}

func (s *DisputeService) Templates(ctx context.Context) domain.Result[[]*domain.DisputeTemplate] {
	templates, err := s.templates.ListActive(ctx)
	if err == nil {
		return domain.Remote(templates)
	}

	metrics.RemoteErrorsTotal.WithLabelValues("dispute_templates", "list").Inc()
	metrics.FallbacksTotal.WithLabelValues("dispute_templates", "local").Inc()
	s.logger.Warn().Err(err).Msg("remote unavailable, falling back to local dispute templates")
	return domain.Degraded(s.local.Templates(), err)
}

func (s *DisputeService) TemplateByID(ctx context.Context, id string) domain.Result[*domain.DisputeTemplate] {
	tpl, err := s.templates.FindByID(ctx, id)
	if err == nil {
		return domain.Remote(tpl)
	}
	if err == domain.ErrTemplateNotFound {
		return domain.Remote[*domain.DisputeTemplate](nil)
	}

	metrics.RemoteErrorsTotal.WithLabelValues("dispute_templates", "get").Inc()
	metrics.FallbacksTotal.WithLabelValues("dispute_templates", "local").Inc()
	s.logger.Warn().Err(err).Str("template_id", id).Msg("remote unavailable, falling back to local dispute templates")
	for _, tpl := range s.local.Templates() {
		if tpl.ID == id {
			return domain.Degraded(tpl, err)
		}
	}
	return domain.Degraded[*domain.DisputeTemplate](nil, err)
}

func (s *DisputeService) CreateTemplate(ctx context.Context, input ports.CreateTemplateInput) (domain.Result[*domain.DisputeTemplate], error) {
	if input.Name == "" || input.Content == "" {
		return domain.Result[*domain.DisputeTemplate]{}, fmt.Errorf("%w: name and content are required", domain.ErrInvalidInput)
	}

	tpl := &domain.DisputeTemplate{
		Name:     input.Name,
		Category: input.Category,
		Subject:  input.Subject,
		Content:  input.Content,
		IsActive: true,
	}

	created, err := s.templates.Create(ctx, tpl)
	if err == nil {
		return domain.Remote(created), nil
	}

	metrics.RemoteErrorsTotal.WithLabelValues("dispute_templates", "create").Inc()
	metrics.FallbacksTotal.WithLabelValues("dispute_templates", "synthetic").Inc()
	s.logger.Warn().Err(err).Msg("remote unavailable, simulating template creation")
	now := time.Now().UTC()
	tpl.ID = "mock-" + uuid.NewString()
	tpl.CreatedAt = now
	tpl.UpdatedAt = now
	return domain.Degraded(tpl, err), nil
}

func (s *DisputeService) UpdateTemplate(ctx context.Context, id string, updates ports.TemplateUpdates) (domain.Result[*domain.DisputeTemplate], error) {
	tpl, err := s.templates.Update(ctx, id, updates)
	if err == nil {
		return domain.Remote(tpl), nil
	}
	if err == domain.ErrTemplateNotFound {
		return domain.Remote[*domain.DisputeTemplate](nil), nil
	}

	metrics.RemoteErrorsTotal.WithLabelValues("dispute_templates", "update").Inc()
	metrics.FallbacksTotal.WithLabelValues("dispute_templates", "synthetic").Inc()
	s.logger.Warn().Err(err).Str("template_id", id).Msg("remote unavailable, simulating template update")

	synth := &domain.DisputeTemplate{ID: id, IsActive: true}
	for _, t := range s.local.Templates() {
		if t.ID == id {
			clone := *t
			synth = &clone
			break
		}
	}
	if updates.Name != nil {
		synth.Name = *updates.Name
	}
	if updates.Category != nil {
		synth.Category = *updates.Category
	}
	if updates.Subject != nil {
		synth.Subject = *updates.Subject
	}
	if updates.Content != nil {
		synth.Content = *updates.Content
	}
	if updates.IsActive != nil {
		synth.IsActive = *updates.IsActive
	}
	synth.UpdatedAt = time.Now().UTC()
	return domain.Degraded(synth, err), nil
}

// Disputes reshapes every negative item into the dispute management view.
func (s *DisputeService) Disputes(ctx context.Context) domain.Result[[]*domain.Dispute] {
	rows, err := s.items.ListAll(ctx)
	if err == nil {
		disputes := make([]*domain.Dispute, 0, len(rows))
		for _, row := range rows {
			disputes = append(disputes, disputeOf(row.Item, row.ClientName))
		}
		return domain.Remote(disputes)
	}

	metrics.RemoteErrorsTotal.WithLabelValues("negative_items", "list").Inc()
	metrics.FallbacksTotal.WithLabelValues("negative_items", "synthetic").Inc()
	s.logger.Warn().Err(err).Msg("remote unavailable, returning mock disputes")
	return domain.Degraded(mockDisputes(), err)
}

func disputeOf(item *domain.NegativeItem, clientName string) *domain.Dispute {
	dateSent := item.LastDisputed
	if dateSent == "" {
		dateSent = item.CreatedAt.UTC().Format("2006-01-02")
	}
	return &domain.Dispute{
		ID:            item.ID,
		ClientID:      item.ClientID,
		ClientName:    clientName,
		Type:          item.Type,
		Creditor:      item.Creditor,
		Account:       item.Account,
		Amount:        item.Amount,
		Status:        domain.DisputeStatusOf(item.Status),
		Bureau:        item.Bureau,
		DisputeReason: item.DisputeReason,
		DateSent:      dateSent,
		ResponseDate:  item.DateRemoved,
		TemplateUsed:  defaultTemplateID,
	}
}

func mockDisputes() []*domain.Dispute {
	today := time.Now().UTC()
	return []*domain.Dispute{
		{
			ID:            "mock-dispute-1",
			ClientID:      "mock-client-1",
			ClientName:    "John Doe",
			Type:          "Collection",
			Creditor:      "Sample Creditor",
			Account:       "ACC123456",
			Amount:        1500.00,
			Status:        domain.DisputePending,
			Bureau:        domain.BureauEquifax,
			DisputeReason: "Not mine",
			DateSent:      today.Format("2006-01-02"),
			TemplateUsed:  defaultTemplateID,
		},
		{
			ID:            "mock-dispute-2",
			ClientID:      "mock-client-2",
			ClientName:    "Jane Smith",
			Type:          "Late Payment",
			Creditor:      "Credit Card Company",
			Account:       "CC789012",
			Amount:        500.00,
			Status:        domain.DisputeInProgress,
			Bureau:        domain.BureauExperian,
			DisputeReason: "Inaccurate date",
			DateSent:      today.AddDate(0, 0, -7).Format("2006-01-02"),
			TemplateUsed:  "template-002",
		},
	}
}
