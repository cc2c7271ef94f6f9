package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minibank/internal/account/models"
	identitymodels "minibank/internal/identity/models"
	"minibank/internal/sentinel"
)

func newAccount(t *testing.T) *models.Account {
	t.Helper()
	owner, err := identitymodels.NewIdentity("Ana Souza", time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC), "12345678900", "Rua A, 10", time.Now())
	require.NoError(t, err)
	a, err := models.NewAccount("0001", owner, time.Now())
	require.NoError(t, err)
	return a
}

func TestCreateAssignsSequentialNumbers(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		a := newAccount(t)
		require.NoError(t, store.Create(ctx, a))
		assert.Equal(t, want, a.Number)
	}

	listed, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i, a := range listed {
		assert.Equal(t, i+1, a.Number)
	}
}

func TestFindByNumber(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	a := newAccount(t)
	require.NoError(t, store.Create(ctx, a))

	found, err := store.FindByNumber(ctx, a.Number)
	require.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)

	_, err = store.FindByNumber(ctx, 99)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestUpdateUnknownAccount(t *testing.T) {
	store := NewInMemory()
	a := newAccount(t)
	a.Number = 7

	err := store.Update(context.Background(), a)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestConcurrentCreatesKeepNumbersUnique(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	const n = 32
	accounts := make([]*models.Account, n)
	for i := range accounts {
		accounts[i] = newAccount(t)
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.Create(ctx, accounts[i]))
		}(i)
	}
	wg.Wait()

	listed, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, n)

	seen := make(map[int]bool, n)
	for _, a := range listed {
		assert.False(t, seen[a.Number], "number %d assigned twice", a.Number)
		seen[a.Number] = true
		assert.GreaterOrEqual(t, a.Number, 1)
		assert.LessOrEqual(t, a.Number, n)
	}
}
