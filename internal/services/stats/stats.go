package stats

import (
	"context"
	"log/slog"

	"moviecatalog/proj/internal/domain/models"
)

const recentReviewsLimit = 10

type StatsStorage interface {
	TotalMovies(ctx context.Context) (int, error)
	TotalReviews(ctx context.Context) (int, error)
	GlobalAverageRating(ctx context.Context) (float64, error)
	RatingsDistribution(ctx context.Context) ([]models.RatingBucket, error)
	GenreBreakdown(ctx context.Context) ([]models.GenreCount, error)
	MoviesPerYear(ctx context.Context) ([]models.YearCount, error)
	RecentReviews(ctx context.Context, limit int) ([]models.ReviewWithMovie, error)
	UserStats(ctx context.Context, userID int64) (*models.UserStats, error)
}

type StatsService struct {
	log     *slog.Logger
	storage StatsStorage
}

func New(log *slog.Logger, storage StatsStorage) *StatsService {
	return &StatsService{log: log, storage: storage}
}

// Collect assembles the system-wide statistics. userID is zero for
// anonymous callers, in which case the per-user rollup stays nil.
func (s *StatsService) Collect(ctx context.Context, userID int64) (*models.Stats, error) {
	const op = "stats.StatsService.Collect"
	log := s.log.With("op", op)
	var (
		stats models.Stats
		err   error
	)
	if stats.TotalMovies, err = s.storage.TotalMovies(ctx); err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if stats.TotalReviews, err = s.storage.TotalReviews(ctx); err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if stats.AverageRating, err = s.storage.GlobalAverageRating(ctx); err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if stats.RatingsDistribution, err = s.storage.RatingsDistribution(ctx); err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if stats.GenreBreakdown, err = s.storage.GenreBreakdown(ctx); err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if stats.MoviesPerYear, err = s.storage.MoviesPerYear(ctx); err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if stats.RecentReviews, err = s.storage.RecentReviews(ctx, recentReviewsLimit); err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if userID != 0 {
		if stats.UserStats, err = s.storage.UserStats(ctx, userID); err != nil {
			log.Error(err.Error())
			return nil, err
		}
	}
	return &stats, nil
}
