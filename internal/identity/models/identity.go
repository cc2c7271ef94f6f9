package models

import (
	"time"

	"github.com/google/uuid"

	dErrors "minibank/pkg/domain-errors"
)

// Identity represents a registered person eligible to own checking accounts.
// Identities are immutable after registration and are never deleted.
type Identity struct {
	ID         uuid.UUID
	FullName   string
	BirthDate  time.Time
	NationalID string
	Address    string
	CreatedAt  time.Time
}

// NewIdentity constructs a validated identity. The national identifier is kept
// exactly as given; uniqueness is the store's concern, not the constructor's.
func NewIdentity(fullName string, birthDate time.Time, nationalID, address string, now time.Time) (*Identity, error) {
	if fullName == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "full name is required")
	}
	if nationalID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "national identifier is required")
	}
	if !digitsOnly(nationalID) {
		return nil, dErrors.New(dErrors.CodeValidation, "national identifier must contain digits only")
	}
	if birthDate.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "birth date is required")
	}
	return &Identity{
		ID:         uuid.New(),
		FullName:   fullName,
		BirthDate:  birthDate,
		NationalID: nationalID,
		Address:    address,
		CreatedAt:  now,
	}, nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
