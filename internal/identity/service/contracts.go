package service

import (
	"context"
	"errors"

	"minibank/internal/identity/models"
	"minibank/internal/sentinel"
	dErrors "minibank/pkg/domain-errors"
)

// IdentityStore defines the persistence contract for identities.
type IdentityStore interface {
	CreateIfNationalIDAvailable(ctx context.Context, ident *models.Identity) error
	FindByNationalID(ctx context.Context, nationalID string) (*models.Identity, error)
	Count(ctx context.Context) (int, error)
}

// wrapIdentityErr translates store sentinel errors into domain errors.
func wrapIdentityErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "identity not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
