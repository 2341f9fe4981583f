package reviews

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"moviecatalog/proj/internal/domain/filters"
	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

type ReviewsStorage interface {
	List(ctx context.Context, f filters.ReviewFilters) ([]models.ReviewWithMovie, error)
	Get(ctx context.Context, id int64) (*models.ReviewWithMovie, error)
	ExistsForMovieAndUser(ctx context.Context, movieID, userID int64) (bool, error)
	Insert(ctx context.Context, movieID, userID int64, rating int, reviewText *string, watchedDate *time.Time, tags []string) (*models.ReviewWithMovie, error)
	Update(ctx context.Context, id int64, rating *int, reviewText *string, watchedDate *time.Time, tags []string) (*models.ReviewWithMovie, error)
	Delete(ctx context.Context, id int64) error
}

type MovieChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type ReviewService struct {
	log     *slog.Logger
	storage ReviewsStorage
	movies  MovieChecker
}

func New(log *slog.Logger, storage ReviewsStorage, movies MovieChecker) *ReviewService {
	return &ReviewService{
		log:     log,
		storage: storage,
		movies:  movies,
	}
}

func (s *ReviewService) List(ctx context.Context, f filters.ReviewFilters) ([]models.ReviewWithMovie, error) {
	const op = "reviews.ReviewService.List"
	log := s.log.With("op", op)
	listed, err := s.storage.List(ctx, f)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return listed, nil
}

func (s *ReviewService) Get(ctx context.Context, id int64) (*models.ReviewWithMovie, error) {
	const op = "reviews.ReviewService.Get"
	log := s.log.With("op", op, "id", id)
	review, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("review not found")
			return nil, ErrReviewNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return review, nil
}

// Create enforces the one-review-per-(movie, user) invariant. The existence
// check gives a friendly error; the table's unique constraint remains the
// authoritative guard, so a concurrent duplicate insert also lands on
// ErrAlreadyReviewed.
func (s *ReviewService) Create(ctx context.Context, movieID, userID int64, rating int, reviewText *string, watchedDate *time.Time, tags []string) (*models.ReviewWithMovie, error) {
	const op = "reviews.ReviewService.Create"
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
	reviewed, err := s.storage.ExistsForMovieAndUser(ctx, movieID, userID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if reviewed {
		log.Info("duplicate review rejected")
		return nil, ErrAlreadyReviewed
	}
	review, err := s.storage.Insert(ctx, movieID, userID, rating, reviewText, watchedDate, tags)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("duplicate review rejected by constraint")
			return nil, ErrAlreadyReviewed
		}
		log.Error(err.Error())
		return nil, err
	}
	return review, nil
}

// Update applies a field-level merge after verifying ownership.
func (s *ReviewService) Update(ctx context.Context, id, userID int64, rating *int, reviewText *string, watchedDate *time.Time, tags []string) (*models.ReviewWithMovie, error) {
	const op = "reviews.ReviewService.Update"
	log := s.log.With("op", op, "id", id, "user_id", userID)
	if err := s.checkOwnership(ctx, id, userID); err != nil {
		return nil, err
	}
	review, err := s.storage.Update(ctx, id, rating, reviewText, watchedDate, tags)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id, userID int64) error {
	const op = "reviews.ReviewService.Delete"
	log := s.log.With("op", op, "id", id, "user_id", userID)
	if err := s.checkOwnership(ctx, id, userID); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrReviewNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

func (s *ReviewService) checkOwnership(ctx context.Context, id, userID int64) error {
	review, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.log.Info("review not found", "id", id)
			return ErrReviewNotFound
		}
		s.log.Error(err.Error())
		return err
	}
	if review.UserID == nil || *review.UserID != userID {
		s.log.Info("ownership check failed", "id", id, "user_id", userID)
		return ErrNotOwner
	}
	return nil
}
