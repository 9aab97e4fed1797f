package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// selectClients joins each client with its user and assigned specialist, the
// same declarative FK joins the backend exposes.
const selectClients = `
	SELECT c.id, c.user_id, c.case_number, c.status,
	       COALESCE(c.assigned_specialist_id::text, ''), c.start_date,
	       c.package_type, c.monthly_fee, c.contract_signed,
	       COALESCE(c.contract_signed_date::text, ''), c.personal_info,
	       c.created_at, c.updated_at,
	       u.id, u.email, u.role, u.first_name, u.last_name,
	       s.id, s.email, s.role, s.first_name, s.last_name
	FROM clients c
	JOIN users u ON u.id = c.user_id
	LEFT JOIN users s ON s.id = c.assigned_specialist_id`

// ClientRepository persists clients rows.
type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func scanClient(row interface{ Scan(...any) error }) (*domain.Client, error) {
	var (
		c            domain.Client
		personalInfo []byte
		user         domain.User
		specID       sql.NullString
		specEmail    sql.NullString
		specRole     sql.NullString
		specFirst    sql.NullString
		specLast     sql.NullString
	)
	err := row.Scan(&c.ID, &c.UserID, &c.CaseNumber, &c.Status,
		&c.AssignedSpecialistID, &c.StartDate, &c.PackageType, &c.MonthlyFee,
		&c.ContractSigned, &c.ContractSignedDate, &personalInfo,
		&c.CreatedAt, &c.UpdatedAt,
		&user.ID, &user.Email, &user.Role, &user.FirstName, &user.LastName,
		&specID, &specEmail, &specRole, &specFirst, &specLast)
	if err != nil {
		return nil, err
	}

	if len(personalInfo) > 0 {
		if err := json.Unmarshal(personalInfo, &c.PersonalInfo); err != nil {
			return nil, fmt.Errorf("decode personal_info: %w", err)
		}
	}
	user.Permissions = domain.PermissionsForRole(user.Role)
	c.User = &user
	if specID.Valid {
		c.AssignedSpecialist = &domain.User{
			ID:          specID.String,
			Email:       specEmail.String,
			Role:        specRole.String,
			FirstName:   specFirst.String,
			LastName:    specLast.String,
			Permissions: domain.PermissionsForRole(specRole.String),
		}
	}
	return &c, nil
}

func (r *ClientRepository) List(ctx context.Context, filter ports.ClientFilter) ([]*domain.Client, error) {
	query := selectClients
	var (
		conds []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("c.status = $%d", len(args)))
	}
	if filter.SpecialistID != "" {
		args = append(args, filter.SpecialistID)
		conds = append(conds, fmt.Sprintf("c.assigned_specialist_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(c.case_number ILIKE $%d OR u.first_name ILIKE $%d OR u.last_name ILIKE $%d)", n, n, n))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY c.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	row := r.db.QueryRowContext(ctx, selectClients+" WHERE c.id = $1", id)
	client, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	return client, nil
}

func (r *ClientRepository) FindByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	row := r.db.QueryRowContext(ctx, selectClients+" WHERE c.user_id = $1", userID)
	client, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find client by user: %w", err)
	}
	return client, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	personalInfo, err := json.Marshal(client.PersonalInfo)
	if err != nil {
		return nil, fmt.Errorf("encode personal_info: %w", err)
	}

	var id string
	now := time.Now().UTC()
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO clients (user_id, case_number, status, assigned_specialist_id,
			start_date, package_type, monthly_fee, contract_signed,
			contract_signed_date, personal_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id`,
		client.UserID, client.CaseNumber, client.Status,
		nullIfEmpty(client.AssignedSpecialistID), client.StartDate,
		client.PackageType, client.MonthlyFee, client.ContractSigned,
		nullIfEmpty(client.ContractSignedDate), personalInfo, now).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *ClientRepository) Update(ctx context.Context, id string, updates ports.ClientUpdates) (*domain.Client, error) {
	var personalInfo any
	if updates.PersonalInfo != nil {
		raw, err := json.Marshal(updates.PersonalInfo)
		if err != nil {
			return nil, fmt.Errorf("encode personal_info: %w", err)
		}
		personalInfo = raw
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE clients SET
			status                 = COALESCE($2, status),
			assigned_specialist_id = COALESCE($3, assigned_specialist_id),
			package_type           = COALESCE($4, package_type),
			monthly_fee            = COALESCE($5, monthly_fee),
			contract_signed        = COALESCE($6, contract_signed),
			contract_signed_date   = COALESCE($7, contract_signed_date),
			personal_info          = COALESCE($8, personal_info),
			updated_at             = $9
		WHERE id = $1`,
		id, statusArg(updates.Status), updates.AssignedSpecialistID,
		updates.PackageType, updates.MonthlyFee, updates.ContractSigned,
		updates.ContractSignedDate, personalInfo, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrClientNotFound
	}
	return r.FindByID(ctx, id)
}

func statusArg(s *domain.CaseStatus) any {
	if s == nil {
		return nil
	}
	return string(*s)
}
