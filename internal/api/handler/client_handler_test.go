package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

type stubClientService struct {
	list   domain.Result[[]*domain.Client]
	byID   domain.Result[*domain.Client]
	filter ports.ClientFilter
}

func (s *stubClientService) List(_ context.Context, filter ports.ClientFilter) domain.Result[[]*domain.Client] {
	s.filter = filter
	return s.list
}

func (s *stubClientService) GetByID(_ context.Context, _ string) domain.Result[*domain.Client] {
	return s.byID
}

func (s *stubClientService) GetByUserID(_ context.Context, _ string) domain.Result[*domain.Client] {
	return s.byID
}

func (s *stubClientService) Create(_ context.Context, _ ports.CreateClientInput) (domain.Result[*domain.Client], error) {
	return domain.Result[*domain.Client]{}, nil
}

func (s *stubClientService) Update(_ context.Context, _ string, _ ports.ClientUpdates) (domain.Result[*domain.Client], error) {
	return domain.Result[*domain.Client]{}, nil
}

func TestClientHandler_List_TagsProvenance(t *testing.T) {
	clients := &stubClientService{
		list: domain.Degraded([]*domain.Client{{ID: "client-1"}}, errors.New("connection refused")),
	}
	h := NewClientHandler(clients, nil, nil)

	c, rec := newTestContext(t, http.MethodGet, "/clients?status=active", "")

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("degraded reads must still answer 200, got %d", rec.Code)
	}

	var resp envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Source != string(domain.SourceFallback) {
		t.Fatalf("expected fallback provenance, got %q", resp.Source)
	}
	if clients.filter.Status != domain.CaseActive {
		t.Fatalf("status filter not forwarded: %+v", clients.filter)
	}
}

func TestClientHandler_List_RejectsUnknownStatus(t *testing.T) {
	h := NewClientHandler(&stubClientService{}, nil, nil)

	c, _ := newTestContext(t, http.MethodGet, "/clients?status=archived", "")

	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestClientHandler_Get_NotFound(t *testing.T) {
	clients := &stubClientService{byID: domain.Remote[*domain.Client](nil)}
	h := NewClientHandler(clients, nil, nil)

	c, _ := newTestContext(t, http.MethodGet, "/clients/missing", "")
	c.SetParamNames("clientId")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}
