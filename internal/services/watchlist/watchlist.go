package watchlist

import (
	"context"
	"errors"
	"log/slog"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

var (
	ErrEntryNotFound      = errors.New("watchlist item not found")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrAlreadyInWatchlist = errors.New("movie is already in your watchlist")
	ErrNotOwner           = errors.New("you can only modify your own watchlist items")
)

type WatchlistStorage interface {
	List(ctx context.Context, userID int64) ([]models.WatchlistItem, error)
	Get(ctx context.Context, id int64) (*models.WatchlistItem, error)
	ExistsForMovieAndUser(ctx context.Context, movieID, userID int64) (bool, error)
	Insert(ctx context.Context, movieID, userID int64, notes *string, priority int) (*models.WatchlistItem, error)
	Update(ctx context.Context, id int64, notes *string, priority *int) (*models.WatchlistItem, error)
	Delete(ctx context.Context, id int64) error
	DeleteByMovie(ctx context.Context, movieID, userID int64) error
}

type MovieChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type WatchlistService struct {
	log     *slog.Logger
	storage WatchlistStorage
	movies  MovieChecker
}

func New(log *slog.Logger, storage WatchlistStorage, movies MovieChecker) *WatchlistService {
	return &WatchlistService{
		log:     log,
		storage: storage,
		movies:  movies,
	}
}

// List is user-scoped for authenticated callers (non-zero userID) and shows
// everything to anonymous visitors.
func (s *WatchlistService) List(ctx context.Context, userID int64) ([]models.WatchlistItem, error) {
	const op = "watchlist.WatchlistService.List"
	log := s.log.With("op", op, "user_id", userID)
	items, err := s.storage.List(ctx, userID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return items, nil
}

// Add enforces the one-entry-per-(movie, user) invariant the same way the
// review path does: friendly pre-check, unique constraint as the backstop.
func (s *WatchlistService) Add(ctx context.Context, movieID, userID int64, notes *string, priority int) (*models.WatchlistItem, error) {
	const op = "watchlist.WatchlistService.Add"
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
		log.Info("duplicate watchlist entry rejected")
		return nil, ErrAlreadyInWatchlist
	}
	item, err := s.storage.Insert(ctx, movieID, userID, notes, priority)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("duplicate watchlist entry rejected by constraint")
			return nil, ErrAlreadyInWatchlist
		}
		log.Error(err.Error())
		return nil, err
	}
	return item, nil
}

func (s *WatchlistService) Update(ctx context.Context, id, userID int64, notes *string, priority *int) (*models.WatchlistItem, error) {
	const op = "watchlist.WatchlistService.Update"
	log := s.log.With("op", op, "id", id, "user_id", userID)
	if err := s.checkOwnership(ctx, id, userID); err != nil {
		return nil, err
	}
	item, err := s.storage.Update(ctx, id, notes, priority)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return item, nil
}

func (s *WatchlistService) Remove(ctx context.Context, id, userID int64) error {
	const op = "watchlist.WatchlistService.Remove"
	log := s.log.With("op", op, "id", id, "user_id", userID)
	if err := s.checkOwnership(ctx, id, userID); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrEntryNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

// RemoveByMovie deletes the caller's entry for a movie without requiring
// the entry id; the user scoping makes a separate ownership check redundant.
func (s *WatchlistService) RemoveByMovie(ctx context.Context, movieID, userID int64) error {
	const op = "watchlist.WatchlistService.RemoveByMovie"
	log := s.log.With("op", op, "movie_id", movieID, "user_id", userID)
	if err := s.storage.DeleteByMovie(ctx, movieID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("watchlist entry not found")
			return ErrEntryNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

func (s *WatchlistService) checkOwnership(ctx context.Context, id, userID int64) error {
	item, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.log.Info("watchlist entry not found", "id", id)
			return ErrEntryNotFound
		}
		s.log.Error(err.Error())
		return err
	}
	if item.UserID != userID {
		s.log.Info("ownership check failed", "id", id, "user_id", userID)
		return ErrNotOwner
	}
	return nil
}
