package ports

import (
	"context"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// UserRepository defines persistence operations on the users table.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, updates UserUpdates) (*domain.User, error)
}

// UserUpdates carries the mutable profile fields; nil means unchanged.
type UserUpdates struct {
	FirstName *string
	LastName  *string
	AvatarURL *string
	IsActive  *bool
}
