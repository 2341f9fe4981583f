package watchlist

import (
	"context"
	"log/slog"
	"testing"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWatchlistStorage struct {
	entries map[int64]*models.WatchlistItem
	nextID  int64
}

func newFakeWatchlistStorage() *fakeWatchlistStorage {
	return &fakeWatchlistStorage{entries: make(map[int64]*models.WatchlistItem), nextID: 1}
}

func (f *fakeWatchlistStorage) List(ctx context.Context, userID int64) ([]models.WatchlistItem, error) {
	var out []models.WatchlistItem
	for _, e := range f.entries {
		if userID == 0 || e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeWatchlistStorage) Get(ctx context.Context, id int64) (*models.WatchlistItem, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeWatchlistStorage) ExistsForMovieAndUser(ctx context.Context, movieID, userID int64) (bool, error) {
	for _, e := range f.entries {
		if e.MovieID == movieID && e.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWatchlistStorage) Insert(ctx context.Context, movieID, userID int64, notes *string, priority int) (*models.WatchlistItem, error) {
	if exists, _ := f.ExistsForMovieAndUser(ctx, movieID, userID); exists {
		return nil, storage.ErrConflict
	}
	id := f.nextID
	f.nextID++
	entry := &models.WatchlistItem{
		WatchlistEntry: models.WatchlistEntry{
			ID:       id,
			MovieID:  movieID,
			UserID:   userID,
			Notes:    notes,
			Priority: priority,
		},
	}
	f.entries[id] = entry
	copied := *entry
	return &copied, nil
}

func (f *fakeWatchlistStorage) Update(ctx context.Context, id int64, notes *string, priority *int) (*models.WatchlistItem, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if notes != nil {
		e.Notes = notes
	}
	if priority != nil {
		e.Priority = *priority
	}
	copied := *e
	return &copied, nil
}

func (f *fakeWatchlistStorage) Delete(ctx context.Context, id int64) error {
	if _, ok := f.entries[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeWatchlistStorage) DeleteByMovie(ctx context.Context, movieID, userID int64) error {
	for id, e := range f.entries {
		if e.MovieID == movieID && e.UserID == userID {
			delete(f.entries, id)
			return nil
		}
	}
	return storage.ErrNotFound
}

type fakeMovieChecker struct {
	existing map[int64]bool
}

func (f *fakeMovieChecker) Exists(ctx context.Context, id int64) (bool, error) {
	return f.existing[id], nil
}

func newTestService(t *testing.T) (*WatchlistService, *fakeWatchlistStorage) {
	t.Helper()
	store := newFakeWatchlistStorage()
	movies := &fakeMovieChecker{existing: map[int64]bool{1: true, 2: true}}
	return New(slog.Default(), store, movies), store
}

func TestAddToWatchlist(t *testing.T) {
	svc, _ := newTestService(t)
	entry, err := svc.Add(context.Background(), 1, 10, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.MovieID)
	assert.Equal(t, 2, entry.Priority)
}

func TestAddToWatchlistDuplicate(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Add(context.Background(), 1, 10, nil, 0)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), 1, 10, nil, 0)
	assert.ErrorIs(t, err, ErrAlreadyInWatchlist)
}

func TestAddToWatchlistMovieNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Add(context.Background(), 999, 10, nil, 0)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestListScopedByUser(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Add(context.Background(), 1, 10, nil, 0)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), 2, 20, nil, 0)
	require.NoError(t, err)

	scoped, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, scoped, 1)

	all, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateWatchlistOwnership(t *testing.T) {
	svc, _ := newTestService(t)
	entry, err := svc.Add(context.Background(), 1, 10, nil, 0)
	require.NoError(t, err)

	priority := 5
	_, err = svc.Update(context.Background(), entry.ID, 99, nil, &priority)
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := svc.Update(context.Background(), entry.ID, 10, nil, &priority)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Priority)
}

func TestRemoveByMovie(t *testing.T) {
	svc, store := newTestService(t)
	_, err := svc.Add(context.Background(), 1, 10, nil, 0)
	require.NoError(t, err)

	err = svc.RemoveByMovie(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, store.entries)

	err = svc.RemoveByMovie(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}
