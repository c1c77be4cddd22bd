package account

import (
	"context"
	"strings"
	"sync"

	domain "experiencebuddy/internal/domain/account"
)

// MemoryStore implements Store on an in-process map.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]domain.Account)}
}

// Save inserts or replaces an account.
// PRE: a.ID is non-empty
// POST: account is stored under its ID
func (s *MemoryStore) Save(_ context.Context, a domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.ID] = a
	return nil
}

// GetByID retrieves an account by ID.
// POST: returns the account or ErrNotFound
func (s *MemoryStore) GetByID(_ context.Context, id string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return domain.Account{}, ErrNotFound
	}
	return a, nil
}

// GetByEmail retrieves an account by email, ignoring case.
// POST: returns the account or ErrNotFound
func (s *MemoryStore) GetByEmail(_ context.Context, email string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return domain.Account{}, ErrNotFound
}

// Count returns the number of stored accounts.
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts), nil
}
