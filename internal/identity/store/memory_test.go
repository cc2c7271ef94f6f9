package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minibank/internal/identity/models"
	"minibank/internal/sentinel"
)

func newIdentity(t *testing.T, nationalID string) *models.Identity {
	t.Helper()
	ident, err := models.NewIdentity("Ana Souza", time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC), nationalID, "Rua A, 10", time.Now())
	require.NoError(t, err)
	return ident
}

func TestCreateIfNationalIDAvailable_Success(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	ident := newIdentity(t, "12345678900")
	require.NoError(t, store.CreateIfNationalIDAvailable(ctx, ident))

	found, err := store.FindByNationalID(ctx, "12345678900")
	require.NoError(t, err)
	assert.Equal(t, ident.ID, found.ID)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCreateIfNationalIDAvailable_DuplicateReturnsError(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	require.NoError(t, store.CreateIfNationalIDAvailable(ctx, newIdentity(t, "12345678900")))

	err := store.CreateIfNationalIDAvailable(ctx, newIdentity(t, "12345678900"))
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrAlreadyUsed)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFindByNationalID_ExactMatchOnly(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	require.NoError(t, store.CreateIfNationalIDAvailable(ctx, newIdentity(t, "12345678900")))

	_, err := store.FindByNationalID(ctx, "1234567890")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	_, err = store.FindByNationalID(ctx, "")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
