package reviews

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"moviecatalog/proj/internal/domain/filters"
	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewsStorage struct {
	reviews map[int64]*models.ReviewWithMovie
	nextID  int64
}

func newFakeReviewsStorage() *fakeReviewsStorage {
	return &fakeReviewsStorage{reviews: make(map[int64]*models.ReviewWithMovie), nextID: 1}
}

func (f *fakeReviewsStorage) List(ctx context.Context, _ filters.ReviewFilters) ([]models.ReviewWithMovie, error) {
	var out []models.ReviewWithMovie
	for _, r := range f.reviews {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReviewsStorage) Get(ctx context.Context, id int64) (*models.ReviewWithMovie, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReviewsStorage) ExistsForMovieAndUser(ctx context.Context, movieID, userID int64) (bool, error) {
	for _, r := range f.reviews {
		if r.MovieID == movieID && r.UserID != nil && *r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewsStorage) Insert(ctx context.Context, movieID, userID int64, rating int, reviewText *string, watchedDate *time.Time, tags []string) (*models.ReviewWithMovie, error) {
	if exists, _ := f.ExistsForMovieAndUser(ctx, movieID, userID); exists {
		return nil, storage.ErrConflict
	}
	id := f.nextID
	f.nextID++
	uid := userID
	review := &models.ReviewWithMovie{
		Review: models.Review{
			ID:          id,
			MovieID:     movieID,
			UserID:      &uid,
			Rating:      rating,
			ReviewText:  reviewText,
			WatchedDate: watchedDate,
			Tags:        tags,
		},
	}
	f.reviews[id] = review
	copied := *review
	return &copied, nil
}

func (f *fakeReviewsStorage) Update(ctx context.Context, id int64, rating *int, reviewText *string, watchedDate *time.Time, tags []string) (*models.ReviewWithMovie, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if rating != nil {
		r.Rating = *rating
	}
	if reviewText != nil {
		r.ReviewText = reviewText
	}
	if watchedDate != nil {
		r.WatchedDate = watchedDate
	}
	if tags != nil {
		r.Tags = tags
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReviewsStorage) Delete(ctx context.Context, id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.reviews, id)
	return nil
}

type fakeMovieChecker struct {
	existing map[int64]bool
}

func (f *fakeMovieChecker) Exists(ctx context.Context, id int64) (bool, error) {
	return f.existing[id], nil
}

func newTestService(t *testing.T) (*ReviewService, *fakeReviewsStorage) {
	t.Helper()
	store := newFakeReviewsStorage()
	movies := &fakeMovieChecker{existing: map[int64]bool{1: true, 2: true}}
	return New(slog.Default(), store, movies), store
}

func TestCreateReview(t *testing.T) {
	svc, _ := newTestService(t)
	review, err := svc.Create(context.Background(), 1, 10, 8, nil, nil, []string{"rewatch"})
	require.NoError(t, err)
	assert.Equal(t, 8, review.Rating)
	assert.Equal(t, []string{"rewatch"}, review.Tags)
}

func TestCreateReviewMovieNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Create(context.Background(), 999, 10, 8, nil, nil, nil)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestCreateReviewDuplicate(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Create(context.Background(), 1, 10, 8, nil, nil, nil)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 1, 10, 9, nil, nil, nil)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestUpdateReviewOwnership(t *testing.T) {
	svc, _ := newTestService(t)
	created, err := svc.Create(context.Background(), 1, 10, 8, nil, nil, nil)
	require.NoError(t, err)

	rating := 9
	_, err = svc.Update(context.Background(), created.ID, 11, &rating, nil, nil, nil)
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := svc.Update(context.Background(), created.ID, 10, &rating, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Rating)
}

func TestUpdateReviewPartialMerge(t *testing.T) {
	svc, _ := newTestService(t)
	text := "great"
	created, err := svc.Create(context.Background(), 1, 10, 8, &text, nil, []string{"cinema"})
	require.NoError(t, err)

	rating := 6
	updated, err := svc.Update(context.Background(), created.ID, 10, &rating, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Rating)
	require.NotNil(t, updated.ReviewText)
	assert.Equal(t, "great", *updated.ReviewText)
	assert.Equal(t, []string{"cinema"}, updated.Tags)
}

func TestDeleteReview(t *testing.T) {
	svc, store := newTestService(t)
	created, err := svc.Create(context.Background(), 1, 10, 8, nil, nil, nil)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, 11)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Len(t, store.reviews, 1)

	err = svc.Delete(context.Background(), created.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, store.reviews)

	err = svc.Delete(context.Background(), created.ID, 10)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}
