package ports

import (
	"context"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// SignInResult carries the authenticated user and their session token.
type SignInResult struct {
	User  *domain.User
	Token string
}

// AuthService implements the authentication flow: remote password check
// first, demo-credential fallback when the backend is unreachable.
type AuthService interface {
	// SignIn returns ErrInvalidCredentials when no credential matches in
	// either path. This is the one operation whose error is surfaced to the
	// caller rather than masked.
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
	// SignOut is best-effort: the session delete may fail, the caller's
	// intent to be signed out always succeeds.
	SignOut(ctx context.Context, token string)
	// GetCurrentUser resolves the session behind token. Returns nil without
	// error when there is no session or the lookup fails; a session is never
	// fabricated from fallback data.
	GetCurrentUser(ctx context.Context, token string) *domain.User
	// UpdateProfile applies profile updates, synthesizing the updated record
	// when the backend is unavailable.
	UpdateProfile(ctx context.Context, userID string, updates UserUpdates) domain.Result[*domain.User]
}
