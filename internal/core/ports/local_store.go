package ports

import "github.com/creditfix/credit-repair-api/internal/core/domain"

// DemoCredential is one seed tuple used to authenticate when the remote
// backend is unavailable. Seed data for demos only, not a production
// credential scheme.
type DemoCredential struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LocalStore serves the bundled JSON documents substituted when a remote
// call fails. A missing or malformed document degrades to an empty list.
type LocalStore interface {
	Clients() []*domain.Client
	Users() []*domain.User
	Templates() []*domain.DisputeTemplate
	DemoCredentials() []DemoCredential
}
