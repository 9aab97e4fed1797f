package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/creditfix/credit-repair-api/internal/api/middleware"
	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
	"github.com/creditfix/credit-repair-api/internal/core/state"
)

type stubAuthService struct {
	result    *ports.SignInResult
	err       error
	current   *domain.User
	signIn    func(email, password string) (*ports.SignInResult, error)
	signedOut []string
}

func (s *stubAuthService) SignIn(_ context.Context, email, password string) (*ports.SignInResult, error) {
	if s.signIn != nil {
		return s.signIn(email, password)
	}
	return s.result, s.err
}

func (s *stubAuthService) SignOut(_ context.Context, token string) {
	s.signedOut = append(s.signedOut, token)
}

func (s *stubAuthService) GetCurrentUser(_ context.Context, token string) *domain.User {
	if token == "" {
		return nil
	}
	return s.current
}

func (s *stubAuthService) UpdateProfile(_ context.Context, _ string, _ ports.UserUpdates) domain.Result[*domain.User] {
	return domain.Remote[*domain.User](nil)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	auth := &stubAuthService{result: &ports.SignInResult{
		User:  &domain.User{ID: "user-1", Role: domain.RoleAdmin},
		Token: "tok-1",
	}}
	h := NewAuthHandler(state.NewStore(auth), auth)

	c, rec := newTestContext(t, http.MethodPost, "/login",
		`{"email":"admin@creditfix.com","password":"admin123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "tok-1" || resp.User == nil || resp.User.ID != "user-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	auth := &stubAuthService{err: domain.ErrInvalidCredentials}
	h := NewAuthHandler(state.NewStore(auth), auth)

	c, _ := newTestContext(t, http.MethodPost, "/login",
		`{"email":"admin@creditfix.com","password":"wrong"}`)

	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
	if he.Message != state.MsgInvalidCredentials {
		t.Fatalf("expected %q, got %v", state.MsgInvalidCredentials, he.Message)
	}
}

func TestAuthHandler_Login_ConcurrentSessionsDoNotCross(t *testing.T) {
	auth := &stubAuthService{signIn: func(email, _ string) (*ports.SignInResult, error) {
		return &ports.SignInResult{
			User:  &domain.User{ID: "user-" + email, Email: email, Role: domain.RoleClient},
			Token: "tok-" + email,
		}, nil
	}}
	h := NewAuthHandler(state.NewStore(auth), auth)

	emails := []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com", "f@x.com", "g@x.com", "h@x.com"}
	for round := 0; round < 200; round++ {
		var wg sync.WaitGroup
		errs := make(chan error, len(emails))
		for _, email := range emails {
			wg.Add(1)
			go func(email string) {
				defer wg.Done()
				body := fmt.Sprintf(`{"email":%q,"password":"pw"}`, email)
				c, rec := newTestContext(t, http.MethodPost, "/login", body)
				if err := h.Login(c); err != nil {
					errs <- err
					return
				}
				var resp loginResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					errs <- err
					return
				}
				if resp.Token != "tok-"+email || resp.User == nil || resp.User.Email != email {
					errs <- fmt.Errorf("round %d: login for %s received token %q, user %+v", round, email, resp.Token, resp.User)
				}
			}(email)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			t.Fatal(err)
		}
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	auth := &stubAuthService{result: &ports.SignInResult{
		User:  &domain.User{ID: "user-1"},
		Token: "tok-1",
	}}
	store := state.NewStore(auth)
	store.Login(context.Background(), "admin@creditfix.com", "admin123")
	h := NewAuthHandler(store, auth)

	c, rec := newTestContext(t, http.MethodPost, "/logout", "")
	c.Set(middleware.CtxToken, "tok-1")

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if store.IsAuthenticated() || store.Token() != "" {
		t.Fatalf("store session not cleared")
	}
	if len(auth.signedOut) != 1 || auth.signedOut[0] != "tok-1" {
		t.Fatalf("remote sign-out not attempted: %v", auth.signedOut)
	}
}

func TestAuthHandler_Logout_ForeignToken(t *testing.T) {
	auth := &stubAuthService{result: &ports.SignInResult{
		User:  &domain.User{ID: "user-1"},
		Token: "tok-1",
	}}
	store := state.NewStore(auth)
	store.Login(context.Background(), "admin@creditfix.com", "admin123")
	h := NewAuthHandler(store, auth)

	// A token the store never issued signs out remotely without touching the
	// stored session.
	c, rec := newTestContext(t, http.MethodPost, "/logout", "")
	c.Set(middleware.CtxToken, "tok-other")

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !store.IsAuthenticated() || store.Token() != "tok-1" {
		t.Fatalf("foreign token must not clear the stored session")
	}
	if len(auth.signedOut) != 1 || auth.signedOut[0] != "tok-other" {
		t.Fatalf("remote sign-out not attempted: %v", auth.signedOut)
	}
}

func TestAuthHandler_Login_ValidatesPayload(t *testing.T) {
	auth := &stubAuthService{}
	h := NewAuthHandler(state.NewStore(auth), auth)

	c, _ := newTestContext(t, http.MethodPost, "/login", `{"email":"not-an-email"}`)

	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	auth := &stubAuthService{current: &domain.User{ID: "user-1", Email: "admin@creditfix.com"}}
	h := NewAuthHandler(state.NewStore(auth), auth)

	c, rec := newTestContext(t, http.MethodGet, "/me", "")
	c.Set(middleware.CtxRole, "admin")
	c.Set(middleware.CtxToken, "tok-1")

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.ID != "user-1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	auth := &stubAuthService{}
	h := NewAuthHandler(state.NewStore(auth), auth)

	c, _ := newTestContext(t, http.MethodGet, "/me", "")

	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
