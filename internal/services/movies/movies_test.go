package movies

import (
	"context"
	"log/slog"
	"testing"

	"moviecatalog/proj/internal/domain/filters"
	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMoviesStorage struct {
	movies map[int64]*models.Movie
	genres map[int64][]models.Genre
}

func (f *fakeMoviesStorage) List(ctx context.Context, _ filters.MovieFilters, _ int64) ([]models.MovieListing, error) {
	var out []models.MovieListing
	for _, m := range f.movies {
		out = append(out, models.MovieListing{Movie: *m})
	}
	return out, nil
}

func (f *fakeMoviesStorage) Get(ctx context.Context, id int64) (*models.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMoviesStorage) Genres(ctx context.Context, movieID int64) ([]models.Genre, error) {
	return f.genres[movieID], nil
}

func (f *fakeMoviesStorage) Insert(ctx context.Context, title string, year *int32, director, posterURL, imdbID *string, genreNames []string) (*models.MovieDetails, error) {
	id := int64(len(f.movies) + 1)
	movie := &models.Movie{ID: id, Title: title, Year: year, Director: director, PosterURL: posterURL, ImdbID: imdbID}
	f.movies[id] = movie
	details := &models.MovieDetails{Movie: *movie}
	for i, name := range genreNames {
		details.Genres = append(details.Genres, models.Genre{ID: int64(i + 1), Name: name})
	}
	f.genres[id] = details.Genres
	return details, nil
}

func (f *fakeMoviesStorage) Update(ctx context.Context, id int64, title *string, year *int32, director, posterURL, imdbID *string, genreNames *[]string) (*models.MovieDetails, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if title != nil {
		m.Title = *title
	}
	if year != nil {
		m.Year = year
	}
	if director != nil {
		m.Director = director
	}
	if posterURL != nil {
		m.PosterURL = posterURL
	}
	if imdbID != nil {
		m.ImdbID = imdbID
	}
	return &models.MovieDetails{Movie: *m, Genres: f.genres[id]}, nil
}

func (f *fakeMoviesStorage) Delete(ctx context.Context, id int64) error {
	if _, ok := f.movies[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.movies, id)
	return nil
}

type fakeCastProvider struct {
	members []models.MovieCastMember
}

func (f *fakeCastProvider) ForMovie(ctx context.Context, movieID int64) ([]models.MovieCastMember, error) {
	return f.members, nil
}

type fakeScreenwriterProvider struct {
	writers []models.MovieScreenwriter
}

func (f *fakeScreenwriterProvider) ForMovie(ctx context.Context, movieID int64) ([]models.MovieScreenwriter, error) {
	return f.writers, nil
}

func newTestService(t *testing.T) (*MovieService, *fakeMoviesStorage) {
	t.Helper()
	store := &fakeMoviesStorage{
		movies: map[int64]*models.Movie{},
		genres: map[int64][]models.Genre{},
	}
	cast := &fakeCastProvider{members: []models.MovieCastMember{
		{CastMember: models.CastMember{ID: 1, Name: "Leonardo DiCaprio"}, CastOrder: 0},
	}}
	writers := &fakeScreenwriterProvider{writers: []models.MovieScreenwriter{
		{Screenwriter: models.Screenwriter{ID: 1, Name: "Christopher Nolan"}},
	}}
	return New(slog.Default(), store, cast, writers), store
}

func TestGetMovieIncludes(t *testing.T) {
	svc, store := newTestService(t)
	store.movies[1] = &models.Movie{ID: 1, Title: "Inception"}
	store.genres[1] = []models.Genre{{ID: 1, Name: "Sci-Fi"}, {ID: 2, Name: "Thriller"}}

	full, err := svc.Get(context.Background(), 1, DetailIncludes{Cast: true, Screenwriters: true, Genres: true})
	require.NoError(t, err)
	assert.Len(t, full.Genres, 2)
	assert.Len(t, full.Cast, 1)
	assert.Len(t, full.Screenwriters, 1)

	bare, err := svc.Get(context.Background(), 1, DetailIncludes{})
	require.NoError(t, err)
	assert.Empty(t, bare.Genres)
	assert.Empty(t, bare.Cast)
	assert.Empty(t, bare.Screenwriters)
}

func TestGetMovieNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Get(context.Background(), 404, DetailIncludes{})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestListIncludeGenres(t *testing.T) {
	svc, store := newTestService(t)
	store.movies[1] = &models.Movie{ID: 1, Title: "Inception"}
	store.genres[1] = []models.Genre{{ID: 1, Name: "Sci-Fi"}}

	listed, err := svc.List(context.Background(), filters.MovieFilters{IncludeGenres: true}, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Len(t, listed[0].Genres, 1)

	plain, err := svc.List(context.Background(), filters.MovieFilters{}, 0)
	require.NoError(t, err)
	require.Len(t, plain, 1)
	assert.Empty(t, plain[0].Genres)
}

func TestCreateMovieWithGenres(t *testing.T) {
	svc, _ := newTestService(t)
	created, err := svc.Create(context.Background(), "Inception", nil, nil, nil, nil, []string{"Sci-Fi", "Thriller"})
	require.NoError(t, err)
	assert.Equal(t, "Inception", created.Title)
	require.Len(t, created.Genres, 2)
}

func TestUpdateMoviePartial(t *testing.T) {
	svc, store := newTestService(t)
	year := int32(2010)
	director := "Christopher Nolan"
	store.movies[1] = &models.Movie{ID: 1, Title: "Inception", Year: &year, Director: &director}

	newDirector := "New Director"
	updated, err := svc.Update(context.Background(), 1, nil, nil, &newDirector, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Inception", updated.Title)
	require.NotNil(t, updated.Year)
	assert.EqualValues(t, 2010, *updated.Year)
	require.NotNil(t, updated.Director)
	assert.Equal(t, "New Director", *updated.Director)
}

func TestDeleteMovieNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}
