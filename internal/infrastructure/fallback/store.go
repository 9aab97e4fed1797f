// Package fallback serves the bundled JSON documents substituted for remote
// data when the hosted backend is unreachable, plus the synthetic records
// used for entities that ship no local file.
package fallback

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// Bundled document names, one per entity with local data.
const (
	ClientsFile     = "clients.json"
	UsersFile       = "users.json"
	TemplatesFile   = "dispute-templates.json"
	CredentialsFile = "demo-credentials.json"
)

// Store loads the bundled documents once at startup. A missing or malformed
// document is logged and degrades to an empty list; it never fails startup.
type Store struct {
	clients   []*domain.Client
	users     []*domain.User
	templates []*domain.DisputeTemplate
	creds     []ports.DemoCredential
}

// NewStore reads every bundled document under dir.
func NewStore(dir string, logger zerolog.Logger) *Store {
	s := &Store{}
	loadFile(filepath.Join(dir, ClientsFile), &s.clients, logger)
	loadFile(filepath.Join(dir, UsersFile), &s.users, logger)
	loadFile(filepath.Join(dir, TemplatesFile), &s.templates, logger)
	loadFile(filepath.Join(dir, CredentialsFile), &s.creds, logger)
	return s
}

func loadFile[T any](path string, into *T, logger zerolog.Logger) {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("file", path).Msg("fallback document unavailable")
		return
	}
	if err := json.Unmarshal(raw, into); err != nil {
		logger.Warn().Err(err).Str("file", path).Msg("fallback document malformed")
	}
}

func (s *Store) Clients() []*domain.Client {
	return s.clients
}

func (s *Store) Users() []*domain.User {
	return s.users
}

func (s *Store) Templates() []*domain.DisputeTemplate {
	return s.templates
}

func (s *Store) DemoCredentials() []ports.DemoCredential {
	return s.creds
}
