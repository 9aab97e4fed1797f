package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

type stubClientRepo struct {
	clients map[string]*domain.Client
	err     error
}

func (r *stubClientRepo) List(_ context.Context, _ ports.ClientFilter) ([]*domain.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	if c, ok := r.clients[id]; ok {
		return c, nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByUserID(_ context.Context, userID string) (*domain.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.clients {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	clone := *client
	clone.ID = "client-new"
	return &clone, nil
}

func (r *stubClientRepo) Update(_ context.Context, id string, updates ports.ClientUpdates) (*domain.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	applyClientUpdates(&clone, updates)
	return &clone, nil
}

func localCaseload() []*domain.Client {
	return []*domain.Client{
		{
			ID:                   "client-1",
			UserID:               "user-3",
			CaseNumber:           "CASE-AAAA1111",
			Status:               domain.CaseActive,
			AssignedSpecialistID: "user-2",
			User:                 &domain.User{FirstName: "John", LastName: "Smith"},
		},
		{
			ID:         "client-2",
			UserID:     "user-4",
			CaseNumber: "CASE-BBBB2222",
			Status:     domain.CasePending,
			User:       &domain.User{FirstName: "Maria", LastName: "Garcia"},
		},
	}
}

func TestClientService_List_Remote(t *testing.T) {
	repo := &stubClientRepo{clients: map[string]*domain.Client{
		"client-1": {ID: "client-1", Status: domain.CaseActive},
	}}
	svc := NewClientService(repo, &stubLocalStore{}, zerolog.Nop())

	result := svc.List(context.Background(), ports.ClientFilter{})
	if result.FromFallback() {
		t.Fatalf("expected remote source, got %s", result.Source)
	}
	if len(result.Data) != 1 {
		t.Fatalf("expected 1 client, got %d", len(result.Data))
	}
}

func TestClientService_List_FallsBackOnRemoteFailure(t *testing.T) {
	repo := &stubClientRepo{err: errRemoteDown}
	svc := NewClientService(repo, &stubLocalStore{clients: localCaseload()}, zerolog.Nop())

	result := svc.List(context.Background(), ports.ClientFilter{})
	if !result.FromFallback() {
		t.Fatalf("expected fallback source, got %s", result.Source)
	}
	if !errors.Is(result.Cause, errRemoteDown) {
		t.Fatalf("cause not preserved: %v", result.Cause)
	}
	if len(result.Data) != 2 {
		t.Fatalf("expected 2 fallback clients, got %d", len(result.Data))
	}
}

func TestClientService_List_FallbackAppliesFilter(t *testing.T) {
	repo := &stubClientRepo{err: errRemoteDown}
	svc := NewClientService(repo, &stubLocalStore{clients: localCaseload()}, zerolog.Nop())

	byStatus := svc.List(context.Background(), ports.ClientFilter{Status: domain.CaseActive})
	if len(byStatus.Data) != 1 || byStatus.Data[0].ID != "client-1" {
		t.Fatalf("status filter not applied to fallback data: %+v", byStatus.Data)
	}

	bySearch := svc.List(context.Background(), ports.ClientFilter{Search: "maria"})
	if len(bySearch.Data) != 1 || bySearch.Data[0].ID != "client-2" {
		t.Fatalf("name search not applied to fallback data: %+v", bySearch.Data)
	}

	byCase := svc.List(context.Background(), ports.ClientFilter{Search: "bbbb"})
	if len(byCase.Data) != 1 || byCase.Data[0].ID != "client-2" {
		t.Fatalf("case-number search not applied to fallback data: %+v", byCase.Data)
	}
}

func TestClientService_GetByID_NotFoundIsRemoteNil(t *testing.T) {
	repo := &stubClientRepo{clients: map[string]*domain.Client{}}
	svc := NewClientService(repo, &stubLocalStore{clients: localCaseload()}, zerolog.Nop())

	result := svc.GetByID(context.Background(), "missing")
	if result.FromFallback() {
		t.Fatalf("a clean not-found must not be tagged as fallback")
	}
	if result.Data != nil {
		t.Fatalf("expected nil data, got %+v", result.Data)
	}
}

func TestClientService_Create(t *testing.T) {
	repo := &stubClientRepo{clients: map[string]*domain.Client{}}
	svc := NewClientService(repo, &stubLocalStore{}, zerolog.Nop())

	result, err := svc.Create(context.Background(), ports.CreateClientInput{
		UserID:      "user-3",
		PackageType: "premium",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	c := result.Data
	if c.Status != domain.CasePending {
		t.Fatalf("new case must start pending, got %s", c.Status)
	}
	if !strings.HasPrefix(c.CaseNumber, "CASE-") || len(c.CaseNumber) != 13 {
		t.Fatalf("unexpected case number: %q", c.CaseNumber)
	}
	if c.CaseNumber != strings.ToUpper(c.CaseNumber) {
		t.Fatalf("case number must be uppercase: %q", c.CaseNumber)
	}

	if _, err := svc.Create(context.Background(), ports.CreateClientInput{}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClientService_Create_SimulatesOnRemoteFailure(t *testing.T) {
	repo := &stubClientRepo{err: errRemoteDown}
	svc := NewClientService(repo, &stubLocalStore{}, zerolog.Nop())

	result, err := svc.Create(context.Background(), ports.CreateClientInput{
		UserID:      "user-3",
		PackageType: "standard",
	})
	if err != nil {
		t.Fatalf("write failure must be masked: %v", err)
	}
	if !result.FromFallback() {
		t.Fatalf("expected fallback source, got %s", result.Source)
	}
	if !strings.HasPrefix(result.Data.ID, "mock-") {
		t.Fatalf("synthesized id expected, got %q", result.Data.ID)
	}
}

func TestClientService_Update_RejectsUnknownStatus(t *testing.T) {
	svc := NewClientService(&stubClientRepo{}, &stubLocalStore{}, zerolog.Nop())

	bad := domain.CaseStatus("archived")
	if _, err := svc.Update(context.Background(), "client-1", ports.ClientUpdates{Status: &bad}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClientService_Update_SynthesizesFromLocal(t *testing.T) {
	repo := &stubClientRepo{err: errRemoteDown}
	svc := NewClientService(repo, &stubLocalStore{clients: localCaseload()}, zerolog.Nop())

	status := domain.CaseCompleted
	result, err := svc.Update(context.Background(), "client-1", ports.ClientUpdates{Status: &status})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !result.FromFallback() {
		t.Fatalf("expected fallback source")
	}
	if result.Data.Status != domain.CaseCompleted {
		t.Fatalf("update not applied: %s", result.Data.Status)
	}
	if result.Data.CaseNumber != "CASE-AAAA1111" {
		t.Fatalf("local clone not used as base: %+v", result.Data)
	}
}
