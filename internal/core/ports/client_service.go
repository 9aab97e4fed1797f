package ports

import (
	"context"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// CreateClientInput carries all data needed to onboard a new client case.
type CreateClientInput struct {
	UserID               string
	CaseNumber           string // optional; generated when empty
	AssignedSpecialistID string
	StartDate            string
	PackageType          string
	MonthlyFee           float64
	ContractSigned       bool
	ContractSignedDate   string
	PersonalInfo         domain.PersonalInfo
}

// ClientService defines use-case operations for client cases. Reads never
// fail: a remote error degrades to the bundled fallback data.
type ClientService interface {
	List(ctx context.Context, filter ClientFilter) domain.Result[[]*domain.Client]
	GetByID(ctx context.Context, id string) domain.Result[*domain.Client]
	GetByUserID(ctx context.Context, userID string) domain.Result[*domain.Client]
	Create(ctx context.Context, input CreateClientInput) (domain.Result[*domain.Client], error)
	Update(ctx context.Context, id string, updates ClientUpdates) (domain.Result[*domain.Client], error)
}
