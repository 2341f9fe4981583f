package models

import (
	"context"
	"errors"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GenreModel struct {
	DB *pgxpool.Pool
}

func (m *GenreModel) List(ctx context.Context) ([]models.Genre, error) {
	rows, _ := m.DB.Query(ctx, "SELECT id, name FROM genres ORDER BY name")
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Genre])
}

func (m *GenreModel) Get(ctx context.Context, id int64) (*models.Genre, error) {
	rows, _ := m.DB.Query(ctx, "SELECT id, name FROM genres WHERE id = $1", id)
	genre, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Genre])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &genre, nil
}

// getOrCreateGenre resolves a genre name to its id, creating the row when
// the name is unseen. Shared by movie create and update, always inside the
// caller's transaction.
func getOrCreateGenre(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, "SELECT id FROM genres WHERE name = $1", name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = tx.QueryRow(ctx, "INSERT INTO genres (name) VALUES ($1) RETURNING id", name).Scan(&id)
	}
	return id, err
}
