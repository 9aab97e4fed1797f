package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

const commColumns = "id, client_id, type, subject, content, sent_by, sent_at, status"

// CommunicationRepository persists communications rows.
type CommunicationRepository struct {
	db *sql.DB
}

func NewCommunicationRepository(db *sql.DB) *CommunicationRepository {
	return &CommunicationRepository{db: db}
}

func scanComm(row interface{ Scan(...any) error }) (*domain.Communication, error) {
	var c domain.Communication
	err := row.Scan(&c.ID, &c.ClientID, &c.Type, &c.Subject, &c.Content,
		&c.SentBy, &c.SentAt, &c.Status)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommunicationRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Communication, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+commColumns+" FROM communications WHERE client_id = $1 ORDER BY sent_at DESC",
		clientID)
	if err != nil {
		return nil, fmt.Errorf("list communications: %w", err)
	}
	defer rows.Close()

	var comms []*domain.Communication
	for rows.Next() {
		c, err := scanComm(rows)
		if err != nil {
			return nil, fmt.Errorf("scan communication: %w", err)
		}
		comms = append(comms, c)
	}
	return comms, rows.Err()
}

func (r *CommunicationRepository) Create(ctx context.Context, comm *domain.Communication) (*domain.Communication, error) {
	sentAt := comm.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now().UTC()
	}
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO communications (client_id, type, subject, content, sent_by, sent_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+commColumns,
		comm.ClientID, comm.Type, comm.Subject, comm.Content, comm.SentBy,
		sentAt, comm.Status)
	created, err := scanComm(row)
	if err != nil {
		return nil, fmt.Errorf("insert communication: %w", err)
	}
	return created, nil
}
