package ports

import (
	"context"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// CreateTemplateInput carries a new reusable dispute letter.
type CreateTemplateInput struct {
	Name     string
	Category string
	Subject  string
	Content  string
}

// DisputeService serves reusable letter templates and the dispute view
// derived from negative items.
type DisputeService interface {
	Templates(ctx context.Context) domain.Result[[]*domain.DisputeTemplate]
	TemplateByID(ctx context.Context, id string) domain.Result[*domain.DisputeTemplate]
	CreateTemplate(ctx context.Context, input CreateTemplateInput) (domain.Result[*domain.DisputeTemplate], error)
	UpdateTemplate(ctx context.Context, id string, updates TemplateUpdates) (domain.Result[*domain.DisputeTemplate], error)
	// Disputes lists every negative item reshaped into the dispute view.
	Disputes(ctx context.Context) domain.Result[[]*domain.Dispute]
}
