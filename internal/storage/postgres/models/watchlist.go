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

type WatchlistModel struct {
	DB *pgxpool.Pool
}

const watchlistJoinedSelect = `
	SELECT w.id, w.movie_id, w.user_id, w.notes, w.priority, w.added_date,
	       m.title AS movie_title, m.year AS movie_year, m.director, m.genre,
	       m.poster_url AS movie_poster, m.imdb_id,
	       u.username AS user_username
	FROM watchlist w
	JOIN movies m ON w.movie_id = m.id
	LEFT JOIN users u ON w.user_id = u.id`

// List returns every entry for anonymous callers and only the caller's own
// entries when userID is non-zero.
func (m *WatchlistModel) List(ctx context.Context, userID int64) ([]models.WatchlistItem, error) {
	query := watchlistJoinedSelect
	var args []any
	if userID != 0 {
		query += " WHERE w.user_id = $1"
		args = append(args, userID)
	}
	query += " ORDER BY w.added_date DESC"
	rows, _ := m.DB.Query(ctx, query, args...)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.WatchlistItem])
}

func (m *WatchlistModel) Get(ctx context.Context, id int64) (*models.WatchlistItem, error) {
	rows, _ := m.DB.Query(ctx, watchlistJoinedSelect+" WHERE w.id = $1", id)
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.WatchlistItem])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (m *WatchlistModel) ExistsForMovieAndUser(ctx context.Context, movieID, userID int64) (bool, error) {
	var exists bool
	err := m.DB.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM watchlist WHERE movie_id = $1 AND user_id = $2)",
		movieID, userID).Scan(&exists)
	return exists, err
}

func (m *WatchlistModel) Insert(ctx context.Context, movieID, userID int64, notes *string, priority int) (*models.WatchlistItem, error) {
	var id int64
	err := m.DB.QueryRow(ctx,
		`INSERT INTO watchlist (movie_id, user_id, notes, priority)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		movieID, userID, notes, priority).Scan(&id)
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode {
			return nil, storage.ErrConflict
		}
		return nil, err
	}
	return m.Get(ctx, id)
}

func (m *WatchlistModel) Update(ctx context.Context, id int64, notes *string, priority *int) (*models.WatchlistItem, error) {
	status, err := m.DB.Exec(ctx,
		`UPDATE watchlist
		 SET notes = COALESCE($1, notes),
		     priority = COALESCE($2, priority)
		 WHERE id = $3`,
		notes, priority, id)
	if err != nil {
		return nil, err
	}
	if status.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}
	return m.Get(ctx, id)
}

func (m *WatchlistModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM watchlist WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *WatchlistModel) DeleteByMovie(ctx context.Context, movieID, userID int64) error {
	status, err := m.DB.Exec(ctx,
		"DELETE FROM watchlist WHERE movie_id = $1 AND user_id = $2", movieID, userID)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
