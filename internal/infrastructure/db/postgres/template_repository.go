package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

const templateColumns = "id, name, category, subject, content, is_active, created_at, updated_at"

// TemplateRepository persists dispute_templates rows.
type TemplateRepository struct {
	db *sql.DB
}

func NewTemplateRepository(db *sql.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func scanTemplate(row interface{ Scan(...any) error }) (*domain.DisputeTemplate, error) {
	var t domain.DisputeTemplate
	err := row.Scan(&t.ID, &t.Name, &t.Category, &t.Subject, &t.Content,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepository) ListActive(ctx context.Context) ([]*domain.DisputeTemplate, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+templateColumns+" FROM dispute_templates WHERE is_active = true ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list dispute templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.DisputeTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dispute template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *TemplateRepository) FindByID(ctx context.Context, id string) (*domain.DisputeTemplate, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+templateColumns+" FROM dispute_templates WHERE id = $1", id)
	tpl, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find dispute template: %w", err)
	}
	return tpl, nil
}

func (r *TemplateRepository) Create(ctx context.Context, tpl *domain.DisputeTemplate) (*domain.DisputeTemplate, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO dispute_templates (name, category, subject, content, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING `+templateColumns,
		tpl.Name, tpl.Category, tpl.Subject, tpl.Content, tpl.IsActive,
		time.Now().UTC())
	created, err := scanTemplate(row)
	if err != nil {
		return nil, fmt.Errorf("insert dispute template: %w", err)
	}
	return created, nil
}

func (r *TemplateRepository) Update(ctx context.Context, id string, updates ports.TemplateUpdates) (*domain.DisputeTemplate, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE dispute_templates SET
			name       = COALESCE($2, name),
			category   = COALESCE($3, category),
			subject    = COALESCE($4, subject),
			content    = COALESCE($5, content),
			is_active  = COALESCE($6, is_active),
			updated_at = $7
		WHERE id = $1
		RETURNING `+templateColumns,
		id, updates.Name, updates.Category, updates.Subject, updates.Content,
		updates.IsActive, time.Now().UTC())
	tpl, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update dispute template: %w", err)
	}
	return tpl, nil
}
