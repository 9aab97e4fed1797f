package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/creditfix/credit-repair-api/internal/api/metrics"
	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	err     error
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.byEmail[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.byID[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return user, r.err
}

func (r *stubUserRepo) Update(_ context.Context, id string, updates ports.UserUpdates) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	if updates.FirstName != nil {
		clone.FirstName = *updates.FirstName
	}
	if updates.LastName != nil {
		clone.LastName = *updates.LastName
	}
	return &clone, nil
}

type stubSessionStore struct {
	sessions map[string]*domain.User
	err      error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.User)}
}

func (s *stubSessionStore) Save(_ context.Context, token string, user *domain.User, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.sessions[token] = user
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, token string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.sessions[token]; ok {
		return u, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.sessions, token)
	return nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func newAuthService(users ports.UserRepository, sessions ports.SessionStore, local ports.LocalStore) *AuthService {
	return NewAuthService(users, sessions, local, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_SignIn_Remote(t *testing.T) {
	users := &stubUserRepo{byEmail: map[string]*domain.User{
		"mike@creditfix.com": {
			ID:           "user-9",
			Email:        "mike@creditfix.com",
			Role:         domain.RoleSpecialist,
			PasswordHash: hashOf(t, "hunter2"),
			IsActive:     true,
		},
	}}
	sessions := newStubSessionStore()
	svc := newAuthService(users, sessions, &stubLocalStore{})

	result, err := svc.SignIn(context.Background(), "mike@creditfix.com", "hunter2")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if result.User.ID != "user-9" {
		t.Fatalf("unexpected user: %+v", result.User)
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}
	if len(result.User.Permissions) != 3 {
		t.Fatalf("specialist permissions not derived: %v", result.User.Permissions)
	}
	if sessions.sessions[result.Token] == nil {
		t.Fatalf("session not recorded")
	}
}

func TestAuthService_SignIn_DemoFallbackOnRemoteFailure(t *testing.T) {
	users := &stubUserRepo{err: errRemoteDown}
	svc := newAuthService(users, newStubSessionStore(), &stubLocalStore{creds: demoCredentials()})

	result, err := svc.SignIn(context.Background(), "admin@creditfix.com", "admin123")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if result.User.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", result.User.Role)
	}
	if len(result.User.Permissions) != 1 || result.User.Permissions[0] != domain.PermissionAll {
		t.Fatalf("admin permissions not derived: %v", result.User.Permissions)
	}
}

func TestAuthService_SignIn_UnknownRemoteUserIsNotARemoteError(t *testing.T) {
	// A healthy backend answering "no such user" is a credential miss, not an
	// outage: the demo seed is still consulted, but the remote-error counter
	// must not move.
	counter := metrics.RemoteErrorsTotal.WithLabelValues("users", "get")
	before := testutil.ToFloat64(counter)

	users := &stubUserRepo{byEmail: map[string]*domain.User{}}
	svc := newAuthService(users, newStubSessionStore(), &stubLocalStore{creds: demoCredentials()})

	result, err := svc.SignIn(context.Background(), "admin@creditfix.com", "admin123")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if result.User.Role != domain.RoleAdmin {
		t.Fatalf("expected demo admin, got %+v", result.User)
	}

	if _, err := svc.SignIn(context.Background(), "nobody@example.com", "nope"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if after := testutil.ToFloat64(counter); after != before {
		t.Fatalf("remote-error counter moved from %v to %v on a not-found answer", before, after)
	}
}

func TestAuthService_SignIn_WrongRemotePasswordFallsToDemo(t *testing.T) {
	// The stored remote hash does not match, but the same email exists in the
	// demo seed with a matching password.
	users := &stubUserRepo{byEmail: map[string]*domain.User{
		"john.smith@email.com": {
			ID:           "user-3",
			Email:        "john.smith@email.com",
			Role:         domain.RoleClient,
			PasswordHash: hashOf(t, "different"),
			IsActive:     true,
		},
	}}
	svc := newAuthService(users, newStubSessionStore(), &stubLocalStore{creds: demoCredentials()})

	result, err := svc.SignIn(context.Background(), "john.smith@email.com", "client123")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if result.User.Role != domain.RoleClient {
		t.Fatalf("expected client role, got %s", result.User.Role)
	}
}

func TestAuthService_SignIn_InvalidCredentials(t *testing.T) {
	svc := newAuthService(&stubUserRepo{err: errRemoteDown}, newStubSessionStore(), &stubLocalStore{creds: demoCredentials()})

	if _, err := svc.SignIn(context.Background(), "nobody@example.com", "nope"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.SignIn(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty input, got %v", err)
	}
}

func TestAuthService_SignIn_InactiveUserRejected(t *testing.T) {
	users := &stubUserRepo{byEmail: map[string]*domain.User{
		"gone@creditfix.com": {
			ID:           "user-7",
			Email:        "gone@creditfix.com",
			Role:         domain.RoleSpecialist,
			PasswordHash: hashOf(t, "hunter2"),
			IsActive:     false,
		},
	}}
	svc := newAuthService(users, newStubSessionStore(), &stubLocalStore{})

	if _, err := svc.SignIn(context.Background(), "gone@creditfix.com", "hunter2"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_SignIn_SessionSaveFailureIgnored(t *testing.T) {
	sessions := newStubSessionStore()
	sessions.err = errRemoteDown
	svc := newAuthService(&stubUserRepo{err: errRemoteDown}, sessions, &stubLocalStore{creds: demoCredentials()})

	result, err := svc.SignIn(context.Background(), "admin@creditfix.com", "admin123")
	if err != nil {
		t.Fatalf("session write failure must not fail sign-in: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	sessions := newStubSessionStore()
	svc := newAuthService(&stubUserRepo{err: errRemoteDown}, sessions, &stubLocalStore{creds: demoCredentials()})

	result, err := svc.SignIn(context.Background(), "admin@creditfix.com", "admin123")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	user := svc.GetCurrentUser(context.Background(), result.Token)
	if user == nil || user.Email != "admin@creditfix.com" {
		t.Fatalf("unexpected current user: %+v", user)
	}

	if svc.GetCurrentUser(context.Background(), "unknown-token") != nil {
		t.Fatalf("unknown token must resolve to nil")
	}
	if svc.GetCurrentUser(context.Background(), "") != nil {
		t.Fatalf("empty token must resolve to nil")
	}
}

func TestAuthService_SignOut(t *testing.T) {
	sessions := newStubSessionStore()
	svc := newAuthService(&stubUserRepo{err: errRemoteDown}, sessions, &stubLocalStore{creds: demoCredentials()})

	result, err := svc.SignIn(context.Background(), "admin@creditfix.com", "admin123")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	svc.SignOut(context.Background(), result.Token)
	if svc.GetCurrentUser(context.Background(), result.Token) != nil {
		t.Fatalf("session should be gone after sign-out")
	}

	// Best-effort: a failing delete must not panic or surface.
	sessions.err = errRemoteDown
	svc.SignOut(context.Background(), "whatever")
}

func TestAuthService_UpdateProfile_Degrades(t *testing.T) {
	local := &stubLocalStore{users: []*domain.User{{
		ID:        "user-1",
		Email:     "admin@creditfix.com",
		Role:      domain.RoleAdmin,
		FirstName: "Sarah",
		LastName:  "Johnson",
	}}}
	svc := newAuthService(&stubUserRepo{err: errRemoteDown}, newStubSessionStore(), local)

	first := "Sally"
	result := svc.UpdateProfile(context.Background(), "user-1", ports.UserUpdates{FirstName: &first})
	if !result.FromFallback() {
		t.Fatalf("expected fallback source, got %s", result.Source)
	}
	if result.Data.FirstName != "Sally" || result.Data.LastName != "Johnson" {
		t.Fatalf("updates not applied to synthesized user: %+v", result.Data)
	}
}
