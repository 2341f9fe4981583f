package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviecatalog/proj/internal/domain/filters"
	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
	"moviecatalog/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewModel struct {
	DB *pgxpool.Pool
}

const reviewJoinedSelect = `
	SELECT r.id, r.movie_id, r.user_id, r.rating, r.review_text, r.watched_date, r.tags, r.created_at,
	       m.title AS movie_title, m.year AS movie_year, m.poster_url AS movie_poster,
	       u.username AS user_username
	FROM reviews r
	JOIN movies m ON r.movie_id = m.id
	LEFT JOIN users u ON r.user_id = u.id`

func (m *ReviewModel) List(ctx context.Context, f filters.ReviewFilters) ([]models.ReviewWithMovie, error) {
	f.Normalize()
	qb := postgres.NewQueryBuilder()
	if f.MovieID != nil {
		qb.Where("r.movie_id = ?", *f.MovieID)
	}
	if f.UserID != nil {
		qb.Where("r.user_id = ?", *f.UserID)
	}
	if f.RatingMin != nil {
		qb.Where("r.rating >= ?", *f.RatingMin)
	}
	if f.RatingMax != nil {
		qb.Where("r.rating <= ?", *f.RatingMax)
	}
	if f.Tag != "" {
		qb.Where("? = ANY(r.tags)", f.Tag)
	}
	query := fmt.Sprintf("%s WHERE %s ORDER BY r.created_at DESC LIMIT %s OFFSET %s",
		reviewJoinedSelect, qb.WhereClause(), qb.Bind(f.Limit), qb.Bind(f.Offset))
	rows, _ := m.DB.Query(ctx, query, qb.Args()...)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.ReviewWithMovie])
}

func (m *ReviewModel) Get(ctx context.Context, id int64) (*models.ReviewWithMovie, error) {
	rows, _ := m.DB.Query(ctx, reviewJoinedSelect+" WHERE r.id = $1", id)
	review, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.ReviewWithMovie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// ExistsForMovieAndUser backs the friendly pre-check of the one-review-per-
// (movie, user) invariant. The table's unique constraint is the actual
// guard; a race between check and insert still surfaces as ErrConflict.
func (m *ReviewModel) ExistsForMovieAndUser(ctx context.Context, movieID, userID int64) (bool, error) {
	var exists bool
	err := m.DB.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM reviews WHERE movie_id = $1 AND user_id = $2)",
		movieID, userID).Scan(&exists)
	return exists, err
}

func (m *ReviewModel) Insert(ctx context.Context, movieID, userID int64, rating int, reviewText *string, watchedDate *time.Time, tags []string) (*models.ReviewWithMovie, error) {
	var id int64
	err := m.DB.QueryRow(ctx,
		`INSERT INTO reviews (movie_id, user_id, rating, review_text, watched_date, tags)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		movieID, userID, rating, reviewText, watchedDate, tags).Scan(&id)
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode {
			return nil, storage.ErrConflict
		}
		return nil, err
	}
	return m.Get(ctx, id)
}

func (m *ReviewModel) Update(ctx context.Context, id int64, rating *int, reviewText *string, watchedDate *time.Time, tags []string) (*models.ReviewWithMovie, error) {
	status, err := m.DB.Exec(ctx,
		`UPDATE reviews
		 SET rating = COALESCE($1, rating),
		     review_text = COALESCE($2, review_text),
		     watched_date = COALESCE($3, watched_date),
		     tags = COALESCE($4, tags)
		 WHERE id = $5`,
		rating, reviewText, watchedDate, tags, id)
	if err != nil {
		return nil, err
	}
	if status.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}
	return m.Get(ctx, id)
}

func (m *ReviewModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
