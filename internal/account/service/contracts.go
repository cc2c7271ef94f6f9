package service

import (
	"context"
	"errors"

	"minibank/internal/account/models"
	identitymodels "minibank/internal/identity/models"
	"minibank/internal/sentinel"
	dErrors "minibank/pkg/domain-errors"
)

// AccountStore defines the persistence contract for accounts.
type AccountStore interface {
	Create(ctx context.Context, a *models.Account) error
	FindByNumber(ctx context.Context, number int) (*models.Account, error)
	Update(ctx context.Context, a *models.Account) error
	List(ctx context.Context) ([]*models.Account, error)
	Count(ctx context.Context) (int, error)
}

// IdentityResolver is the slice of the identity registry the ledger needs:
// resolving a national identifier to a registered identity before an account
// is opened. The registry service satisfies it.
type IdentityResolver interface {
	FindByNationalID(ctx context.Context, nationalID string) (*identitymodels.Identity, error)
}

// wrapAccountErr translates store sentinel errors into domain errors.
func wrapAccountErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "account not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
