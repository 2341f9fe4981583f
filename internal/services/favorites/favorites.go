package favorites

import (
	"context"
	"errors"
	"log/slog"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

var (
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrAlreadyFavorite  = errors.New("movie is already in your favorites")
)

type FavoritesStorage interface {
	ListForUser(ctx context.Context, userID int64) ([]models.FavoriteItem, error)
	ExistsForMovieAndUser(ctx context.Context, movieID, userID int64) (bool, error)
	Insert(ctx context.Context, movieID, userID int64) (*models.Favorite, error)
	DeleteByMovie(ctx context.Context, movieID, userID int64) error
}

type MovieChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type FavoriteService struct {
	log     *slog.Logger
	storage FavoritesStorage
	movies  MovieChecker
}

func New(log *slog.Logger, storage FavoritesStorage, movies MovieChecker) *FavoriteService {
	return &FavoriteService{
		log:     log,
		storage: storage,
		movies:  movies,
	}
}

func (s *FavoriteService) List(ctx context.Context, userID int64) ([]models.FavoriteItem, error) {
	const op = "favorites.FavoriteService.List"
	log := s.log.With("op", op, "user_id", userID)
	items, err := s.storage.ListForUser(ctx, userID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return items, nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, movieID, userID int64) (bool, error) {
	const op = "favorites.FavoriteService.IsFavorite"
	log := s.log.With("op", op, "movie_id", movieID, "user_id", userID)
	favorite, err := s.storage.ExistsForMovieAndUser(ctx, movieID, userID)
	if err != nil {
		log.Error(err.Error())
		return false, err
	}
	return favorite, nil
}

func (s *FavoriteService) Add(ctx context.Context, movieID, userID int64) (*models.Favorite, error) {
	const op = "favorites.FavoriteService.Add"
	log := s.log.With("op", op, "movie_id", movieID, "user_id", userID)
	exists, err := s.movies.Exists(ctx, movieID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if !exists {
		log.Info("movie not found")
		return nil, ErrMovieNotFound
	}
	present, err := s.storage.ExistsForMovieAndUser(ctx, movieID, userID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if present {
		log.Info("duplicate favorite rejected")
		return nil, ErrAlreadyFavorite
	}
	favorite, err := s.storage.Insert(ctx, movieID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("duplicate favorite rejected by constraint")
			return nil, ErrAlreadyFavorite
		}
		log.Error(err.Error())
		return nil, err
	}
	return favorite, nil
}

func (s *FavoriteService) Remove(ctx context.Context, movieID, userID int64) error {
	const op = "favorites.FavoriteService.Remove"
	log := s.log.With("op", op, "movie_id", movieID, "user_id", userID)
	if err := s.storage.DeleteByMovie(ctx, movieID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("favorite not found")
			return ErrFavoriteNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}
