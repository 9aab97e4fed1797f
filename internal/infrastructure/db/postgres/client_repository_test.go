package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

var clientCols = []string{
	"id", "user_id", "case_number", "status", "assigned_specialist_id",
	"start_date", "package_type", "monthly_fee", "contract_signed",
	"contract_signed_date", "personal_info", "created_at", "updated_at",
	"u_id", "u_email", "u_role", "u_first_name", "u_last_name",
	"s_id", "s_email", "s_role", "s_first_name", "s_last_name",
}

func clientRow(now time.Time) *sqlmock.Rows {
	personalInfo := []byte(`{"phone":"555-0134","address":{"city":"Austin","state":"TX"},"ssn_last4":"4821"}`)
	return sqlmock.NewRows(clientCols).AddRow(
		"client-1", "user-3", "CASE-AAAA1111", "active", "user-2",
		"2025-02-10", "premium", 149.99, true,
		"2025-02-10", personalInfo, now, now,
		"user-3", "john.smith@email.com", "client", "John", "Smith",
		"user-2", "specialist@creditfix.com", "specialist", "Mike", "Rodriguez",
	)
}

func TestClientRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`(?s)SELECT .+ FROM clients c`).
		WillReturnRows(clientRow(now))

	repo := NewClientRepository(db)
	clients, err := repo.List(context.Background(), ports.ClientFilter{})
	require.NoError(t, err)
	require.Len(t, clients, 1)

	c := clients[0]
	assert.Equal(t, domain.CaseActive, c.Status)
	assert.Equal(t, "555-0134", c.PersonalInfo.Phone)
	assert.Equal(t, "Austin", c.PersonalInfo.Address.City)
	require.NotNil(t, c.User)
	assert.Equal(t, "John Smith", c.User.FullName())
	assert.Equal(t, domain.PermissionsForRole(domain.RoleClient), c.User.Permissions)
	require.NotNil(t, c.AssignedSpecialist)
	assert.Equal(t, "user-2", c.AssignedSpecialist.ID)
	assert.Equal(t, domain.PermissionsForRole(domain.RoleSpecialist), c.AssignedSpecialist.Permissions)
}

func TestClientRepository_List_FiltersBuildPredicates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .+ FROM clients c.+WHERE c\.status = \$1 AND \(c\.case_number ILIKE \$2`).
		WithArgs("active", "%smith%").
		WillReturnRows(sqlmock.NewRows(clientCols))

	repo := NewClientRepository(db)
	clients, err := repo.List(context.Background(), ports.ClientFilter{
		Status: domain.CaseActive,
		Search: "smith",
	})
	require.NoError(t, err)
	assert.Empty(t, clients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .+ FROM clients c`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(clientCols))

	repo := NewClientRepository(db)
	_, err = repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}
