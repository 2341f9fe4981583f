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

// Cast members and screenwriters share the same junction-row shape: an
// ordering column for display sequencing plus, for cast, a character name.

type CastModel struct {
	DB *pgxpool.Pool
}

func (m *CastModel) List(ctx context.Context, search string) ([]models.CastMember, error) {
	query := "SELECT id, name, bio, profile_image_url FROM cast_members"
	var args []any
	if search != "" {
		query += " WHERE name ILIKE $1"
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY name"
	rows, _ := m.DB.Query(ctx, query, args...)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.CastMember])
}

func (m *CastModel) Get(ctx context.Context, id int64) (*models.CastMember, error) {
	rows, _ := m.DB.Query(ctx, "SELECT id, name, bio, profile_image_url FROM cast_members WHERE id = $1", id)
	member, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.CastMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// Credits lists the movies a cast member appears in, ordered by their
// billing order then by release year, newest first.
func (m *CastModel) Credits(ctx context.Context, castID int64) ([]models.CastCredit, error) {
	rows, _ := m.DB.Query(ctx, `
		SELECT m.id, m.title, m.year, m.director, m.genre, m.poster_url, m.imdb_id, m.created_at,
		       mc.character_name, mc.cast_order
		FROM movies m
		JOIN movie_cast mc ON m.id = mc.movie_id
		WHERE mc.cast_id = $1
		ORDER BY mc.cast_order, m.year DESC`, castID)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.CastCredit])
}

func (m *CastModel) ForMovie(ctx context.Context, movieID int64) ([]models.MovieCastMember, error) {
	rows, _ := m.DB.Query(ctx, `
		SELECT c.id, c.name, c.bio, c.profile_image_url, mc.character_name, mc.cast_order
		FROM cast_members c
		JOIN movie_cast mc ON c.id = mc.cast_id
		WHERE mc.movie_id = $1
		ORDER BY mc.cast_order, c.name`, movieID)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.MovieCastMember])
}

func (m *CastModel) Insert(ctx context.Context, name string, bio, profileImageURL *string) (*models.CastMember, error) {
	rows, _ := m.DB.Query(ctx,
		`INSERT INTO cast_members (name, bio, profile_image_url)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, bio, profile_image_url`,
		name, bio, profileImageURL)
	member, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.CastMember])
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Link attaches a cast member to a movie. The junction's unique constraint
// rejects a second link for the same (movie, cast) pair with ErrConflict.
func (m *CastModel) Link(ctx context.Context, movieID, castID int64, characterName *string, castOrder int) (*models.MovieCastMember, error) {
	_, err := m.DB.Exec(ctx,
		`INSERT INTO movie_cast (movie_id, cast_id, character_name, cast_order)
		 VALUES ($1, $2, $3, $4)`,
		movieID, castID, characterName, castOrder)
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode {
			return nil, storage.ErrConflict
		}
		return nil, err
	}
	rows, _ := m.DB.Query(ctx, `
		SELECT c.id, c.name, c.bio, c.profile_image_url, mc.character_name, mc.cast_order
		FROM cast_members c
		JOIN movie_cast mc ON c.id = mc.cast_id
		WHERE mc.movie_id = $1 AND mc.cast_id = $2`, movieID, castID)
	linked, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.MovieCastMember])
	if err != nil {
		return nil, err
	}
	return &linked, nil
}

func (m *CastModel) Unlink(ctx context.Context, movieID, castID int64) error {
	status, err := m.DB.Exec(ctx,
		"DELETE FROM movie_cast WHERE movie_id = $1 AND cast_id = $2", movieID, castID)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

type ScreenwriterModel struct {
	DB *pgxpool.Pool
}

func (m *ScreenwriterModel) List(ctx context.Context, search string) ([]models.Screenwriter, error) {
	query := "SELECT id, name, bio FROM screenwriters"
	var args []any
	if search != "" {
		query += " WHERE name ILIKE $1"
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY name"
	rows, _ := m.DB.Query(ctx, query, args...)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Screenwriter])
}

func (m *ScreenwriterModel) Get(ctx context.Context, id int64) (*models.Screenwriter, error) {
	rows, _ := m.DB.Query(ctx, "SELECT id, name, bio FROM screenwriters WHERE id = $1", id)
	writer, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Screenwriter])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &writer, nil
}

func (m *ScreenwriterModel) Credits(ctx context.Context, screenwriterID int64) ([]models.ScreenwriterCredit, error) {
	rows, _ := m.DB.Query(ctx, `
		SELECT m.id, m.title, m.year, m.director, m.genre, m.poster_url, m.imdb_id, m.created_at,
		       ms.screenwriter_order
		FROM movies m
		JOIN movie_screenwriters ms ON m.id = ms.movie_id
		WHERE ms.screenwriter_id = $1
		ORDER BY ms.screenwriter_order, m.year DESC`, screenwriterID)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.ScreenwriterCredit])
}

func (m *ScreenwriterModel) ForMovie(ctx context.Context, movieID int64) ([]models.MovieScreenwriter, error) {
	rows, _ := m.DB.Query(ctx, `
		SELECT s.id, s.name, s.bio, ms.screenwriter_order
		FROM screenwriters s
		JOIN movie_screenwriters ms ON s.id = ms.screenwriter_id
		WHERE ms.movie_id = $1
		ORDER BY ms.screenwriter_order, s.name`, movieID)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.MovieScreenwriter])
}

func (m *ScreenwriterModel) Insert(ctx context.Context, name string, bio *string) (*models.Screenwriter, error) {
	rows, _ := m.DB.Query(ctx,
		"INSERT INTO screenwriters (name, bio) VALUES ($1, $2) RETURNING id, name, bio",
		name, bio)
	writer, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Screenwriter])
	if err != nil {
		return nil, err
	}
	return &writer, nil
}

func (m *ScreenwriterModel) Link(ctx context.Context, movieID, screenwriterID int64, order int) (*models.MovieScreenwriter, error) {
	_, err := m.DB.Exec(ctx,
		`INSERT INTO movie_screenwriters (movie_id, screenwriter_id, screenwriter_order)
		 VALUES ($1, $2, $3)`,
		movieID, screenwriterID, order)
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode {
			return nil, storage.ErrConflict
		}
		return nil, err
	}
	rows, _ := m.DB.Query(ctx, `
		SELECT s.id, s.name, s.bio, ms.screenwriter_order
		FROM screenwriters s
		JOIN movie_screenwriters ms ON s.id = ms.screenwriter_id
		WHERE ms.movie_id = $1 AND ms.screenwriter_id = $2`, movieID, screenwriterID)
	linked, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.MovieScreenwriter])
	if err != nil {
		return nil, err
	}
	return &linked, nil
}

func (m *ScreenwriterModel) Unlink(ctx context.Context, movieID, screenwriterID int64) error {
	status, err := m.DB.Exec(ctx,
		"DELETE FROM movie_screenwriters WHERE movie_id = $1 AND screenwriter_id = $2",
		movieID, screenwriterID)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
