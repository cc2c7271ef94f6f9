package store

import (
	"context"
	"fmt"
	"sync"

	"minibank/internal/identity/models"
	"minibank/internal/sentinel"
)

// ErrNotFound is returned when an identity is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores identities in memory for the lifetime of one process run.
// The national-identifier index enforces uniqueness with an exact-string match,
// no normalization.
type InMemory struct {
	mu         sync.RWMutex
	identities map[string]*models.Identity
	natIdx     map[string]string
}

// NewInMemory creates an empty in-memory identity store.
func NewInMemory() *InMemory {
	return &InMemory{
		identities: make(map[string]*models.Identity),
		natIdx:     make(map[string]string),
	}
}

// CreateIfNationalIDAvailable atomically stores the identity if its national
// identifier is not already registered.
func (s *InMemory) CreateIfNationalIDAvailable(_ context.Context, ident *models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.natIdx[ident.NationalID]; exists {
		return fmt.Errorf("national identifier must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	key := ident.ID.String()
	s.identities[key] = ident
	s.natIdx[ident.NationalID] = key
	return nil
}

// FindByNationalID retrieves an identity by its national identifier.
func (s *InMemory) FindByNationalID(_ context.Context, nationalID string) (*models.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if key, ok := s.natIdx[nationalID]; ok {
		return s.identities[key], nil
	}
	return nil, ErrNotFound
}

// Count returns the total number of registered identities.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.identities), nil
}
