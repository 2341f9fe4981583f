package movies

import (
	"context"
	"errors"
	"log/slog"

	"moviecatalog/proj/internal/domain/filters"
	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

type MoviesStorage interface {
	List(ctx context.Context, f filters.MovieFilters, userID int64) ([]models.MovieListing, error)
	Get(ctx context.Context, id int64) (*models.Movie, error)
	Genres(ctx context.Context, movieID int64) ([]models.Genre, error)
	Insert(ctx context.Context, title string, year *int32, director, posterURL, imdbID *string, genreNames []string) (*models.MovieDetails, error)
	Update(ctx context.Context, id int64, title *string, year *int32, director, posterURL, imdbID *string, genreNames *[]string) (*models.MovieDetails, error)
	Delete(ctx context.Context, id int64) error
}

type CastProvider interface {
	ForMovie(ctx context.Context, movieID int64) ([]models.MovieCastMember, error)
}

type ScreenwriterProvider interface {
	ForMovie(ctx context.Context, movieID int64) ([]models.MovieScreenwriter, error)
}

type MovieService struct {
	log           *slog.Logger
	storage       MoviesStorage
	cast          CastProvider
	screenwriters ScreenwriterProvider
}

func New(log *slog.Logger, storage MoviesStorage, cast CastProvider, screenwriters ScreenwriterProvider) *MovieService {
	return &MovieService{
		log:           log,
		storage:       storage,
		cast:          cast,
		screenwriters: screenwriters,
	}
}

// List runs the filtered listing. userID is zero for anonymous callers,
// which disables the in_watchlist criterion. When genre inclusion is
// requested every returned movie gets one extra lookup, genres ordered
// alphabetically.
func (s *MovieService) List(ctx context.Context, f filters.MovieFilters, userID int64) ([]models.MovieListing, error) {
	const op = "movies.MovieService.List"
	log := s.log.With("op", op)
	listed, err := s.storage.List(ctx, f, userID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if f.IncludeGenres {
		for i := range listed {
			genres, err := s.storage.Genres(ctx, listed[i].ID)
			if err != nil {
				log.Error(err.Error())
				return nil, err
			}
			listed[i].Genres = genres
		}
	}
	return listed, nil
}

type DetailIncludes struct {
	Cast          bool
	Screenwriters bool
	Genres        bool
}

func (s *MovieService) Get(ctx context.Context, id int64, includes DetailIncludes) (*models.MovieDetails, error) {
	const op = "movies.MovieService.Get"
	log := s.log.With("op", op, "id", id)
	movie, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	details := &models.MovieDetails{Movie: *movie}
	if includes.Genres {
		if details.Genres, err = s.storage.Genres(ctx, id); err != nil {
			log.Error(err.Error())
			return nil, err
		}
	}
	if includes.Cast {
		if details.Cast, err = s.cast.ForMovie(ctx, id); err != nil {
			log.Error(err.Error())
			return nil, err
		}
	}
	if includes.Screenwriters {
		if details.Screenwriters, err = s.screenwriters.ForMovie(ctx, id); err != nil {
			log.Error(err.Error())
			return nil, err
		}
	}
	return details, nil
}

func (s *MovieService) Create(ctx context.Context, title string, year *int32, director, posterURL, imdbID *string, genres []string) (*models.MovieDetails, error) {
	const op = "movies.MovieService.Create"
	log := s.log.With("op", op, "title", title)
	movie, err := s.storage.Insert(ctx, title, year, director, posterURL, imdbID, genres)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("movie already exists")
			return nil, ErrMovieAlreadyExists
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

// Update merges only the supplied fields; a non-nil genres slice replaces
// the movie's genre set entirely.
func (s *MovieService) Update(ctx context.Context, id int64, title *string, year *int32, director, posterURL, imdbID *string, genres *[]string) (*models.MovieDetails, error) {
	const op = "movies.MovieService.Update"
	log := s.log.With("op", op, "id", id)
	movie, err := s.storage.Update(ctx, id, title, year, director, posterURL, imdbID, genres)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		case errors.Is(err, storage.ErrConflict):
			log.Info("conflicting movie update")
			return nil, ErrMovieAlreadyExists
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) Delete(ctx context.Context, id int64) error {
	const op = "movies.MovieService.Delete"
	log := s.log.With("op", op, "id", id)
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return ErrMovieNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}
