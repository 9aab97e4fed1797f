package state

import (
	"context"
	"errors"
	"testing"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

type stubAuth struct {
	result     *ports.SignInResult
	err        error
	signOutErr error
	signedOut  []string
}

func (s *stubAuth) SignIn(_ context.Context, _, _ string) (*ports.SignInResult, error) {
	return s.result, s.err
}

func (s *stubAuth) SignOut(_ context.Context, token string) {
	s.signedOut = append(s.signedOut, token)
}

func (s *stubAuth) GetCurrentUser(_ context.Context, _ string) *domain.User {
	return nil
}

func (s *stubAuth) UpdateProfile(_ context.Context, _ string, _ ports.UserUpdates) domain.Result[*domain.User] {
	return domain.Remote[*domain.User](nil)
}

func TestStore_Login_Success(t *testing.T) {
	auth := &stubAuth{result: &ports.SignInResult{
		User:  &domain.User{ID: "user-1", Role: domain.RoleAdmin},
		Token: "tok-1",
	}}
	store := NewStore(auth)

	result, errMsg := store.Login(context.Background(), "admin@creditfix.com", "admin123")
	if result == nil {
		t.Fatalf("expected login to succeed, got %q", errMsg)
	}
	if result.User.ID != "user-1" || result.Token != "tok-1" {
		t.Fatalf("wrong session returned: %+v", result)
	}

	snap := store.Snapshot()
	if !snap.IsAuthenticated || snap.User == nil || snap.User.ID != "user-1" {
		t.Fatalf("state not recorded: %+v", snap)
	}
	if snap.IsLoading {
		t.Fatalf("loading flag not cleared")
	}
	if snap.Error != "" {
		t.Fatalf("unexpected error message: %q", snap.Error)
	}
	if store.Token() != "tok-1" {
		t.Fatalf("token not recorded")
	}
}

func TestStore_Login_InvalidCredentials(t *testing.T) {
	store := NewStore(&stubAuth{err: domain.ErrInvalidCredentials})

	result, errMsg := store.Login(context.Background(), "admin@creditfix.com", "wrong")
	if result != nil {
		t.Fatalf("expected login to fail")
	}
	if errMsg != MsgInvalidCredentials {
		t.Fatalf("expected %q, got %q", MsgInvalidCredentials, errMsg)
	}

	snap := store.Snapshot()
	if snap.IsAuthenticated {
		t.Fatalf("must stay anonymous after failure")
	}
	if snap.Error != MsgInvalidCredentials {
		t.Fatalf("expected %q, got %q", MsgInvalidCredentials, snap.Error)
	}
	if snap.IsLoading {
		t.Fatalf("loading flag not cleared on failure")
	}
}

func TestStore_Login_GenericFailureMessage(t *testing.T) {
	store := NewStore(&stubAuth{err: errors.New("token signing broke")})

	result, errMsg := store.Login(context.Background(), "a@b.com", "pw")
	if result != nil {
		t.Fatalf("expected login to fail")
	}
	if errMsg != MsgLoginFailed {
		t.Fatalf("expected %q, got %q", MsgLoginFailed, errMsg)
	}
	if got := store.Error(); got != MsgLoginFailed {
		t.Fatalf("expected %q, got %q", MsgLoginFailed, got)
	}
}

func TestStore_Logout_ClearsOwningSession(t *testing.T) {
	auth := &stubAuth{result: &ports.SignInResult{
		User:  &domain.User{ID: "user-1"},
		Token: "tok-1",
	}}
	store := NewStore(auth)
	store.Login(context.Background(), "a@b.com", "pw")

	// SignOut is fire-and-forget; even a broken remote clears local state.
	auth.signOutErr = errors.New("redis down")
	store.Logout(context.Background(), "tok-1")

	snap := store.Snapshot()
	if snap.IsAuthenticated || snap.User != nil || store.Token() != "" {
		t.Fatalf("state not cleared: %+v", snap)
	}
	if len(auth.signedOut) != 1 || auth.signedOut[0] != "tok-1" {
		t.Fatalf("remote sign-out not attempted with the session token: %v", auth.signedOut)
	}
}

func TestStore_Logout_StaleTokenLeavesStoreIntact(t *testing.T) {
	auth := &stubAuth{result: &ports.SignInResult{
		User:  &domain.User{ID: "user-1"},
		Token: "tok-1",
	}}
	store := NewStore(auth)
	store.Login(context.Background(), "a@b.com", "pw")

	// A token from an earlier session signs out remotely without wiping the
	// session a later login stored.
	store.Logout(context.Background(), "tok-old")

	if !store.IsAuthenticated() || store.Token() != "tok-1" {
		t.Fatalf("stale token must not clear the current session")
	}
	if len(auth.signedOut) != 1 || auth.signedOut[0] != "tok-old" {
		t.Fatalf("stale token not signed out remotely: %v", auth.signedOut)
	}
}

func TestStore_ClearError(t *testing.T) {
	store := NewStore(&stubAuth{err: domain.ErrInvalidCredentials})
	store.Login(context.Background(), "a@b.com", "pw")

	if store.Error() == "" {
		t.Fatalf("precondition: error should be set")
	}
	store.ClearError()
	if store.Error() != "" {
		t.Fatalf("error not cleared")
	}
}
