// Package state holds the application's authentication state in an explicit,
// injectable container with a defined lifecycle: constructed at startup,
// reset on logout.
package state

import (
	"context"
	"errors"
	"sync"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// User-visible messages. Invalid credentials is the one error surfaced to
// the user rather than masked.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgLoginFailed        = "Login failed. Please try again."
)

// Snapshot is a consistent read of the store's fields.
type Snapshot struct {
	User            *domain.User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// Store tracks the current user through the
// anonymous -> authenticating -> {authenticated, anonymous+error} lifecycle.
type Store struct {
	auth ports.AuthService

	mu              sync.RWMutex
	user            *domain.User
	token           string
	isAuthenticated bool
	isLoading       bool
	err             string
}

func NewStore(auth ports.AuthService) *Store {
	return &Store{auth: auth}
}

// Login authenticates and records the result. It returns the signed-in
// session directly so concurrent callers each get their own result; re-reading
// the shared store after the lock is released could hand back a session stored
// by a different login. On failure the result is nil and the user-visible
// message is returned (and readable via Error). Loading is cleared on every
// path.
func (s *Store) Login(ctx context.Context, email, password string) (*ports.SignInResult, string) {
	s.mu.Lock()
	s.isLoading = true
	s.err = ""
	s.mu.Unlock()

	result, err := s.auth.SignIn(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.err = MsgInvalidCredentials
		} else {
			s.err = MsgLoginFailed
		}
		return nil, s.err
	}

	s.user = result.User
	s.token = result.Token
	s.isAuthenticated = true
	return result, ""
}

// Logout signs out the presented token remotely best-effort and clears the
// store when that token owns the stored session. The compare-and-clear
// happens under one lock so a concurrent login's session is never wiped by a
// stale token.
func (s *Store) Logout(ctx context.Context, token string) {
	s.mu.Lock()
	if s.token == token {
		s.user = nil
		s.token = ""
		s.isAuthenticated = false
		s.err = ""
	}
	s.mu.Unlock()

	s.auth.SignOut(ctx, token)
}

// ClearError resets the error message only.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// Snapshot returns a consistent read of the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		User:            s.user,
		IsAuthenticated: s.isAuthenticated,
		IsLoading:       s.isLoading,
		Error:           s.err,
	}
}

func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
