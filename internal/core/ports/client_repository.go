package ports

import (
	"context"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// ClientFilter carries the query parameters for listing client cases.
type ClientFilter struct {
	Status       domain.CaseStatus // optional: filter by case status
	SpecialistID string            // optional: scope to one assigned specialist
	Search       string            // optional: partial match on case number or client name
}

// ClientRepository defines persistence operations on the clients table.
// Reads join the client's user and assigned specialist rows.
type ClientRepository interface {
	List(ctx context.Context, filter ClientFilter) ([]*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id string, updates ClientUpdates) (*domain.Client, error)
}

// ClientUpdates carries the mutable client fields; nil means unchanged.
type ClientUpdates struct {
	Status               *domain.CaseStatus
	AssignedSpecialistID *string
	PackageType          *string
	MonthlyFee           *float64
	ContractSigned       *bool
	ContractSignedDate   *string
	PersonalInfo         *domain.PersonalInfo
}
