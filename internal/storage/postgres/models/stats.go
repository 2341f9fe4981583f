package models

import (
	"context"

	"moviecatalog/proj/internal/domain/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsModel struct {
	DB *pgxpool.Pool
}

func (m *StatsModel) TotalMovies(ctx context.Context) (int, error) {
	var count int
	err := m.DB.QueryRow(ctx, "SELECT COUNT(*) FROM movies").Scan(&count)
	return count, err
}

func (m *StatsModel) TotalReviews(ctx context.Context) (int, error) {
	var count int
	err := m.DB.QueryRow(ctx, "SELECT COUNT(*) FROM reviews").Scan(&count)
	return count, err
}

// GlobalAverageRating reports 0 when no reviews exist, rounded to two
// decimal places at the store boundary so the value is already numeric.
func (m *StatsModel) GlobalAverageRating(ctx context.Context) (float64, error) {
	var avg float64
	err := m.DB.QueryRow(ctx,
		"SELECT ROUND(COALESCE(AVG(rating), 0), 2)::float8 FROM reviews").Scan(&avg)
	return avg, err
}

// RatingsDistribution returns a bucket per integer rating that actually
// occurs, ascending.
func (m *StatsModel) RatingsDistribution(ctx context.Context) ([]models.RatingBucket, error) {
	rows, _ := m.DB.Query(ctx, `
		SELECT rating, COUNT(*)::int AS count
		FROM reviews
		GROUP BY rating
		ORDER BY rating`)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.RatingBucket])
}

// GenreBreakdown counts movies per legacy single-valued genre column, top
// ten descending. Movies without that column set are excluded.
func (m *StatsModel) GenreBreakdown(ctx context.Context) ([]models.GenreCount, error) {
	rows, _ := m.DB.Query(ctx, `
		SELECT genre, COUNT(*)::int AS count
		FROM movies
		WHERE genre IS NOT NULL AND genre != ''
		GROUP BY genre
		ORDER BY count DESC
		LIMIT 10`)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.GenreCount])
}

// MoviesPerYear counts movies for the 20 most recent distinct years.
func (m *StatsModel) MoviesPerYear(ctx context.Context) ([]models.YearCount, error) {
	rows, _ := m.DB.Query(ctx, `
		SELECT year, COUNT(*)::int AS count
		FROM movies
		WHERE year IS NOT NULL
		GROUP BY year
		ORDER BY year DESC
		LIMIT 20`)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.YearCount])
}

func (m *StatsModel) RecentReviews(ctx context.Context, limit int) ([]models.ReviewWithMovie, error) {
	rows, _ := m.DB.Query(ctx,
		reviewJoinedSelect+" ORDER BY r.created_at DESC LIMIT $1", limit)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.ReviewWithMovie])
}

func (m *StatsModel) UserStats(ctx context.Context, userID int64) (*models.UserStats, error) {
	var stats models.UserStats
	err := m.DB.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*)::int FROM reviews WHERE user_id = $1),
			(SELECT ROUND(COALESCE(AVG(rating), 0), 2)::float8 FROM reviews WHERE user_id = $1),
			(SELECT COUNT(*)::int FROM watchlist WHERE user_id = $1)`,
		userID).Scan(&stats.ReviewsCount, &stats.AverageRating, &stats.WatchlistCount)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
