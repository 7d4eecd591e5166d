package memory

import (
	"fmt"

	"loandesk/internal/adapters/persistence/repositories"
	"loandesk/internal/core/domain"
	"loandesk/internal/pkg/password"
)

// CredentialStore holds the login credentials seeded at process start.
// The list is read-only after construction, so lookups need no locking.
type CredentialStore struct {
	credentials []domain.Credential
}

var _ repositories.CredentialStore = (*CredentialStore)(nil)

// NewCredentialStore creates a credential store with the given entries
func NewCredentialStore(credentials ...domain.Credential) *CredentialStore {
	return &CredentialStore{credentials: credentials}
}

// SeedCredentialStore hashes the given plaintext password and builds a
// store holding a single credential
func SeedCredentialStore(username, plaintext string) (*CredentialStore, error) {
	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seeded password: %w", err)
	}

	return NewCredentialStore(domain.Credential{
		ID:           "1",
		Username:     username,
		PasswordHash: hash,
	}), nil
}

// GetByUsername looks up a credential by exact username match
func (s *CredentialStore) GetByUsername(username string) (*domain.Credential, bool) {
	for i := range s.credentials {
		if s.credentials[i].Username == username {
			return &s.credentials[i], true
		}
	}
	return nil, false
}
