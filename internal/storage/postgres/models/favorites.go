package models

import (
	"context"
	"errors"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
	"moviecatalog/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteModel struct {
	DB *pgxpool.Pool
}

func (m *FavoriteModel) ListForUser(ctx context.Context, userID int64) ([]models.FavoriteItem, error) {
	rows, _ := m.DB.Query(ctx, `
		SELECT f.id, f.movie_id, f.user_id, f.created_at,
		       m.title AS movie_title, m.year AS movie_year, m.director,
		       m.poster_url AS movie_poster, m.imdb_id
		FROM favorites f
		JOIN movies m ON f.movie_id = m.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`, userID)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.FavoriteItem])
}

func (m *FavoriteModel) ExistsForMovieAndUser(ctx context.Context, movieID, userID int64) (bool, error) {
	var exists bool
	err := m.DB.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM favorites WHERE movie_id = $1 AND user_id = $2)",
		movieID, userID).Scan(&exists)
	return exists, err
}

func (m *FavoriteModel) Insert(ctx context.Context, movieID, userID int64) (*models.Favorite, error) {
	rows, _ := m.DB.Query(ctx,
		`INSERT INTO favorites (movie_id, user_id)
		 VALUES ($1, $2)
		 RETURNING id, movie_id, user_id, created_at`,
		movieID, userID)
	favorite, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Favorite])
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode {
			return nil, storage.ErrConflict
		}
		return nil, err
	}
	return &favorite, nil
}

func (m *FavoriteModel) DeleteByMovie(ctx context.Context, movieID, userID int64) error {
	status, err := m.DB.Exec(ctx,
		"DELETE FROM favorites WHERE movie_id = $1 AND user_id = $2", movieID, userID)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
