package service

import (
	"errors"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// errRemoteDown stands in for any infrastructure failure in the stubs.
var errRemoteDown = errors.New("connection refused")

// stubLocalStore serves fixed fallback data.
type stubLocalStore struct {
	clients   []*domain.Client
	users     []*domain.User
	templates []*domain.DisputeTemplate
	creds     []ports.DemoCredential
}

func (s *stubLocalStore) Clients() []*domain.Client             { return s.clients }
func (s *stubLocalStore) Users() []*domain.User                 { return s.users }
func (s *stubLocalStore) Templates() []*domain.DisputeTemplate  { return s.templates }
func (s *stubLocalStore) DemoCredentials() []ports.DemoCredential { return s.creds }

func demoCredentials() []ports.DemoCredential {
	return []ports.DemoCredential{
		{Email: "admin@creditfix.com", Password: "admin123", Role: domain.RoleAdmin, FirstName: "Sarah", LastName: "Johnson"},
		{Email: "specialist@creditfix.com", Password: "specialist123", Role: domain.RoleSpecialist, FirstName: "Mike", LastName: "Rodriguez"},
		{Email: "john.smith@email.com", Password: "client123", Role: domain.RoleClient, FirstName: "John", LastName: "Smith"},
	}
}
