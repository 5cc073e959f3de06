package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/CorrelAid/form_intake/inits"
	"github.com/CorrelAid/form_intake/models"
	"github.com/CorrelAid/form_intake/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeadStore(t *testing.T) *repository.MemStore[models.Lead, *models.Lead] {
	t.Helper()
	db, err := inits.NewMemDB()
	require.NoError(t, err)
	return repository.NewMemStore[models.Lead](db, inits.LeadTable)
}

func TestMemStore_SaveAssignsSequentialIDs(t *testing.T) {
	store := newLeadStore(t)
	ctx := context.Background()

	first, err := store.Save(ctx, &models.Lead{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	second, err := store.Save(ctx, &models.Lead{Name: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
}

func TestMemStore_RoundTrip(t *testing.T) {
	store := newLeadStore(t)
	ctx := context.Background()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	saved, err := store.Save(ctx, &models.Lead{
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Message:   "Call me back",
		CreatedAt: created,
	})
	require.NoError(t, err)

	got, err := store.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, *saved, *got)
}

func TestMemStore_FindByIDReturnsCopy(t *testing.T) {
	store := newLeadStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, &models.Lead{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	got, err := store.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	got.Name = "changed"
	saved.Name = "changed too"

	again, err := store.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.Name)
}

func TestMemStore_FindByIDNotFound(t *testing.T) {
	store := newLeadStore(t)

	_, err := store.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemStore_InsertFailureIsStorageError(t *testing.T) {
	store := newLeadStore(t)

	// The email index does not allow missing values.
	_, err := store.Save(context.Background(), &models.Lead{Name: "Ada"})

	var storageErr *repository.StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "save", storageErr.Op)
	assert.Equal(t, inits.LeadTable, storageErr.Table)
}

func TestMemStore_CanceledContext(t *testing.T) {
	store := newLeadStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, &models.Lead{Name: "Ada", Email: "ada@example.com"})
	assert.ErrorIs(t, err, context.Canceled)

	var storageErr *repository.StorageError
	assert.True(t, errors.As(err, &storageErr))
}

func TestMemStore_ConcurrentSavesGetDistinctIDs(t *testing.T) {
	db, err := inits.NewMemDB()
	require.NoError(t, err)
	store := repository.NewMemStore[models.Feedback](db, inits.FeedbackTable)

	const n = 50
	ids := make(chan uint, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fb, err := store.Save(context.Background(), &models.Feedback{
				Name: "Ada", Email: "ada@example.com", Rating: 5, Comments: "great",
			})
			if assert.NoError(t, err) {
				ids <- fb.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestMemStore_NilRecord(t *testing.T) {
	store := newLeadStore(t)
	_, err := store.Save(context.Background(), nil)
	assert.Error(t, err)
}
