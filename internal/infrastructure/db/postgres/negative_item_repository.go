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

const itemColumns = `id, client_id, type, creditor, account, amount, status, bureau,
	dispute_reason, date_reported::text, COALESCE(date_removed::text, ''),
	COALESCE(last_disputed::text, ''), created_at, updated_at`

// NegativeItemRepository persists negative_items rows.
type NegativeItemRepository struct {
	db *sql.DB
}

func NewNegativeItemRepository(db *sql.DB) *NegativeItemRepository {
	return &NegativeItemRepository{db: db}
}

func scanItem(row interface{ Scan(...any) error }) (*domain.NegativeItem, error) {
	var it domain.NegativeItem
	err := row.Scan(&it.ID, &it.ClientID, &it.Type, &it.Creditor, &it.Account,
		&it.Amount, &it.Status, &it.Bureau, &it.DisputeReason,
		&it.DateReported, &it.DateRemoved, &it.LastDisputed,
		&it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *NegativeItemRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.NegativeItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM negative_items WHERE client_id = $1 ORDER BY created_at DESC",
		clientID)
	if err != nil {
		return nil, fmt.Errorf("list negative items: %w", err)
	}
	defer rows.Close()

	var items []*domain.NegativeItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan negative item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *NegativeItemRepository) ListAll(ctx context.Context) ([]*ports.ItemWithClient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT i.id, i.client_id, i.type, i.creditor, i.account, i.amount,
		       i.status, i.bureau, i.dispute_reason, i.date_reported::text,
		       COALESCE(i.date_removed::text, ''), COALESCE(i.last_disputed::text, ''),
		       i.created_at, i.updated_at,
		       u.first_name, u.last_name
		FROM negative_items i
		JOIN clients c ON c.id = i.client_id
		JOIN users u ON u.id = c.user_id
		ORDER BY i.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all negative items: %w", err)
	}
	defer rows.Close()

	var items []*ports.ItemWithClient
	for rows.Next() {
		var (
			it          domain.NegativeItem
			first, last string
		)
		err := rows.Scan(&it.ID, &it.ClientID, &it.Type, &it.Creditor,
			&it.Account, &it.Amount, &it.Status, &it.Bureau, &it.DisputeReason,
			&it.DateReported, &it.DateRemoved, &it.LastDisputed,
			&it.CreatedAt, &it.UpdatedAt, &first, &last)
		if err != nil {
			return nil, fmt.Errorf("scan negative item: %w", err)
		}
		items = append(items, &ports.ItemWithClient{
			Item:       &it,
			ClientName: first + " " + last,
		})
	}
	return items, rows.Err()
}

func (r *NegativeItemRepository) FindByID(ctx context.Context, id string) (*domain.NegativeItem, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM negative_items WHERE id = $1", id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find negative item: %w", err)
	}
	return item, nil
}

func (r *NegativeItemRepository) Create(ctx context.Context, item *domain.NegativeItem) (*domain.NegativeItem, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO negative_items (client_id, type, creditor, account, amount,
			status, bureau, dispute_reason, date_reported, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING `+itemColumns,
		item.ClientID, item.Type, item.Creditor, item.Account, item.Amount,
		item.Status, item.Bureau, item.DisputeReason, item.DateReported,
		time.Now().UTC())
	created, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("insert negative item: %w", err)
	}
	return created, nil
}

func (r *NegativeItemRepository) Update(ctx context.Context, id string, updates ports.ItemUpdates) (*domain.NegativeItem, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE negative_items SET
			status         = COALESCE($2, status),
			dispute_reason = COALESCE($3, dispute_reason),
			date_removed   = COALESCE($4::date, date_removed),
			last_disputed  = COALESCE($5::date, last_disputed),
			updated_at     = $6
		WHERE id = $1
		RETURNING `+itemColumns,
		id, itemStatusArg(updates.Status), updates.DisputeReason,
		updates.DateRemoved, updates.LastDisputed, time.Now().UTC())
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update negative item: %w", err)
	}
	return item, nil
}

func itemStatusArg(s *domain.ItemStatus) any {
	if s == nil {
		return nil
	}
	return string(*s)
}
