package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

const documentColumns = "id, COALESCE(client_id::text, ''), name, type, file_path, file_size, mime_type, uploaded_by, created_at"

// DocumentRepository persists documents rows.
type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func scanDocument(row interface{ Scan(...any) error }) (*domain.Document, error) {
	var d domain.Document
	err := row.Scan(&d.ID, &d.ClientID, &d.Name, &d.Type, &d.FilePath,
		&d.FileSize, &d.MimeType, &d.UploadedBy, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepository) List(ctx context.Context, clientID string) ([]*domain.Document, error) {
	query := "SELECT " + documentColumns + " FROM documents"
	var args []any
	if clientID != "" {
		query += " WHERE client_id = $1"
		args = append(args, clientID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []*domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO documents (client_id, name, type, file_path, file_size, mime_type, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+documentColumns,
		nullIfEmpty(doc.ClientID), doc.Name, doc.Type, doc.FilePath,
		doc.FileSize, doc.MimeType, doc.UploadedBy, time.Now().UTC())
	created, err := scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return created, nil
}
