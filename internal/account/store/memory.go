package store

import (
	"context"
	"sync"

	"minibank/internal/account/models"
	"minibank/internal/sentinel"
)

// ErrNotFound is returned when an account is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores accounts in memory for the lifetime of one process run.
// Account numbers are assigned under the store lock: count of existing
// accounts plus one, starting at 1. Accounts are never removed, so numbers
// are never reused.
type InMemory struct {
	mu       sync.RWMutex
	accounts []*models.Account
	byNumber map[int]*models.Account
}

// NewInMemory creates an empty in-memory account store.
func NewInMemory() *InMemory {
	return &InMemory{byNumber: make(map[int]*models.Account)}
}

// Create assigns the next sequential account number and stores the account.
func (s *InMemory) Create(_ context.Context, a *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.Number = len(s.accounts) + 1
	s.accounts = append(s.accounts, a)
	s.byNumber[a.Number] = a
	return nil
}

// FindByNumber retrieves an account by its number.
func (s *InMemory) FindByNumber(_ context.Context, number int) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.byNumber[number]; ok {
		return a, nil
	}
	return nil, ErrNotFound
}

// Update re-stores an account previously created here.
func (s *InMemory) Update(_ context.Context, a *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byNumber[a.Number]; !ok {
		return ErrNotFound
	}
	s.byNumber[a.Number] = a
	return nil
}

// List returns a snapshot of all accounts in creation order.
func (s *InMemory) List(_ context.Context) ([]*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}

// Count returns the total number of accounts.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts), nil
}
