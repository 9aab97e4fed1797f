package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

const scoreColumns = "id, client_id, equifax, experian, transunion, average, score_date::text, created_at"

// ScoreRepository persists credit_scores rows. The table is append-only.
type ScoreRepository struct {
	db *sql.DB
}

func NewScoreRepository(db *sql.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func scanScore(row interface{ Scan(...any) error }) (*domain.CreditScore, error) {
	var s domain.CreditScore
	err := row.Scan(&s.ID, &s.ClientID, &s.Equifax, &s.Experian,
		&s.TransUnion, &s.Average, &s.ScoreDate, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScoreRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.CreditScore, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+scoreColumns+" FROM credit_scores WHERE client_id = $1 ORDER BY score_date ASC",
		clientID)
	if err != nil {
		return nil, fmt.Errorf("list credit scores: %w", err)
	}
	defer rows.Close()

	var scores []*domain.CreditScore
	for rows.Next() {
		s, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credit score: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

func (r *ScoreRepository) Latest(ctx context.Context, clientID string) (*domain.CreditScore, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+scoreColumns+" FROM credit_scores WHERE client_id = $1 ORDER BY score_date DESC LIMIT 1",
		clientID)
	score, err := scanScore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest credit score: %w", err)
	}
	return score, nil
}

func (r *ScoreRepository) Create(ctx context.Context, score *domain.CreditScore) (*domain.CreditScore, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO credit_scores (client_id, equifax, experian, transunion, average, score_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+scoreColumns,
		score.ClientID, score.Equifax, score.Experian, score.TransUnion,
		score.Average, score.ScoreDate, time.Now().UTC())
	created, err := scanScore(row)
	if err != nil {
		return nil, fmt.Errorf("insert credit score: %w", err)
	}
	return created, nil
}
