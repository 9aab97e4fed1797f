package ports

import (
	"context"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// TemplateRepository defines persistence operations on the dispute_templates
// table.
type TemplateRepository interface {
	// ListActive returns active templates ordered by name.
	ListActive(ctx context.Context) ([]*domain.DisputeTemplate, error)
	FindByID(ctx context.Context, id string) (*domain.DisputeTemplate, error)
	Create(ctx context.Context, tpl *domain.DisputeTemplate) (*domain.DisputeTemplate, error)
	Update(ctx context.Context, id string, updates TemplateUpdates) (*domain.DisputeTemplate, error)
}

// TemplateUpdates carries the mutable template fields; nil means unchanged.
type TemplateUpdates struct {
	Name     *string
	Category *string
	Subject  *string
	Content  *string
	IsActive *bool
}
