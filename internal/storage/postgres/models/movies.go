package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moviecatalog/proj/internal/domain/filters"
	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
	"moviecatalog/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MovieModel struct {
	DB *pgxpool.Pool
}

const movieGenresQuery = `
	SELECT g.id, g.name
	FROM genres g
	JOIN movie_genres mg ON g.id = mg.genre_id
	WHERE mg.movie_id = $1
	ORDER BY g.name`

// List runs the filtered/aggregated movie listing. Every recognized
// criterion is optional and composes with AND; LIMIT and OFFSET are always
// the last two bound parameters. userID scopes the in_watchlist test and is
// zero for anonymous callers, for whom that criterion is ignored.
func (m *MovieModel) List(ctx context.Context, f filters.MovieFilters, userID int64) ([]models.MovieListing, error) {
	f.Normalize()
	qb := postgres.NewQueryBuilder()
	if f.Search != "" {
		qb.Where("m.title ILIKE ?", "%"+f.Search+"%")
	}
	if f.Year != nil {
		qb.Where("m.year = ?", *f.Year)
	}
	if f.YearMin != nil {
		qb.Where("m.year >= ?", *f.YearMin)
	}
	if f.YearMax != nil {
		qb.Where("m.year <= ?", *f.YearMax)
	}
	if f.RatingMin != nil {
		qb.Where("(SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE movie_id = m.id) >= ?", *f.RatingMin)
	}
	if f.RatingMax != nil {
		qb.Where("(SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE movie_id = m.id) <= ?", *f.RatingMax)
	}
	if f.Director != "" {
		qb.Where("m.director ILIKE ?", "%"+f.Director+"%")
	}
	if f.Genre != "" {
		qb.Where(`m.id IN (
			SELECT mg.movie_id FROM movie_genres mg
			JOIN genres g ON mg.genre_id = g.id
			WHERE g.name ILIKE ?)`, "%"+f.Genre+"%")
	}
	if len(f.GenreIDs) > 0 {
		// Set intersection: the movie must be linked to every requested
		// genre, checked by comparing the distinct-match count to the
		// size of the requested set.
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(f.GenreIDs)), ", ")
		args := make([]any, 0, len(f.GenreIDs)+1)
		for _, id := range f.GenreIDs {
			args = append(args, id)
		}
		args = append(args, len(f.GenreIDs))
		qb.Where(fmt.Sprintf(`m.id IN (
			SELECT movie_id FROM movie_genres
			WHERE genre_id IN (%s)
			GROUP BY movie_id
			HAVING COUNT(DISTINCT genre_id) = ?)`, placeholders), args...)
	}
	if f.HasReviews != nil {
		if *f.HasReviews {
			qb.Where("EXISTS (SELECT 1 FROM reviews WHERE movie_id = m.id)")
		} else {
			qb.Where("NOT EXISTS (SELECT 1 FROM reviews WHERE movie_id = m.id)")
		}
	}
	if f.InWatchlist != nil && userID != 0 {
		if *f.InWatchlist {
			qb.Where("EXISTS (SELECT 1 FROM watchlist WHERE movie_id = m.id AND user_id = ?)", userID)
		} else {
			qb.Where("NOT EXISTS (SELECT 1 FROM watchlist WHERE movie_id = m.id AND user_id = ?)", userID)
		}
	}

	var orderBy string
	switch col := f.SortColumn(); col {
	case "rating":
		orderBy = "average_rating"
	case "review_count":
		orderBy = "review_count"
	default:
		orderBy = "m." + col
	}

	query := fmt.Sprintf(`
	SELECT m.id, m.title, m.year, m.director, m.genre, m.poster_url, m.imdb_id, m.created_at,
	       ROUND(COALESCE(AVG(r.rating), 0), 2)::float8 AS average_rating,
	       COUNT(DISTINCT r.id)::int AS review_count
	FROM movies m
	LEFT JOIN reviews r ON m.id = r.movie_id
	WHERE %s
	GROUP BY m.id
	ORDER BY %s %s, m.id ASC
	LIMIT %s OFFSET %s`,
		qb.WhereClause(), orderBy, f.SortDirection(), qb.Bind(f.Limit), qb.Bind(f.Offset))

	rows, _ := m.DB.Query(ctx, query, qb.Args()...)
	type row struct {
		models.Movie
		AverageRating float64
		ReviewCount   int
	}
	listed, err := pgx.CollectRows(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, err
	}
	movies := make([]models.MovieListing, 0, len(listed))
	for _, r := range listed {
		movies = append(movies, models.MovieListing{
			Movie:         r.Movie,
			AverageRating: r.AverageRating,
			ReviewCount:   r.ReviewCount,
		})
	}
	return movies, nil
}

func (m *MovieModel) Get(ctx context.Context, id int64) (*models.Movie, error) {
	rows, _ := m.DB.Query(ctx,
		"SELECT id, title, year, director, genre, poster_url, imdb_id, created_at FROM movies WHERE id = $1", id)
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (m *MovieModel) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := m.DB.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// Genres returns the movie's linked genres ordered alphabetically by name.
func (m *MovieModel) Genres(ctx context.Context, movieID int64) ([]models.Genre, error) {
	rows, _ := m.DB.Query(ctx, movieGenresQuery, movieID)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Genre])
}

// Insert creates a movie together with its genre links in one transaction.
// Genre names that don't exist yet are created lazily.
func (m *MovieModel) Insert(ctx context.Context, title string, year *int32, director, posterURL, imdbID *string, genreNames []string) (*models.MovieDetails, error) {
	var details models.MovieDetails
	err := postgres.WithTx(ctx, m.DB, func(tx pgx.Tx) error {
		rows, _ := tx.Query(ctx,
			`INSERT INTO movies (title, year, director, poster_url, imdb_id)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id, title, year, director, genre, poster_url, imdb_id, created_at`,
			title, year, director, posterURL, imdbID)
		movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
		if err != nil {
			return err
		}
		details.Movie = movie
		if len(genreNames) == 0 {
			return nil
		}
		for _, name := range genreNames {
			genreID, err := getOrCreateGenre(ctx, tx, name)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				"INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
				movie.ID, genreID); err != nil {
				return err
			}
		}
		grows, _ := tx.Query(ctx, movieGenresQuery, movie.ID)
		details.Genres, err = pgx.CollectRows(grows, pgx.RowToStructByName[models.Genre])
		return err
	})
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode {
			return nil, storage.ErrConflict
		}
		return nil, err
	}
	return &details, nil
}

// Update applies a field-level merge: nil fields keep their prior value.
// A non-nil genreNames replaces the movie's whole genre set; the update and
// the replacement commit or roll back together.
func (m *MovieModel) Update(ctx context.Context, id int64, title *string, year *int32, director, posterURL, imdbID *string, genreNames *[]string) (*models.MovieDetails, error) {
	var details models.MovieDetails
	err := postgres.WithTx(ctx, m.DB, func(tx pgx.Tx) error {
		rows, _ := tx.Query(ctx,
			`UPDATE movies
			 SET title = COALESCE($1, title),
			     year = COALESCE($2, year),
			     director = COALESCE($3, director),
			     poster_url = COALESCE($4, poster_url),
			     imdb_id = COALESCE($5, imdb_id)
			 WHERE id = $6
			 RETURNING id, title, year, director, genre, poster_url, imdb_id, created_at`,
			title, year, director, posterURL, imdbID, id)
		movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return storage.ErrNotFound
			}
			return err
		}
		details.Movie = movie
		if genreNames != nil {
			if _, err := tx.Exec(ctx, "DELETE FROM movie_genres WHERE movie_id = $1", id); err != nil {
				return err
			}
			for _, name := range *genreNames {
				genreID, err := getOrCreateGenre(ctx, tx, name)
				if err != nil {
					return err
				}
				if _, err := tx.Exec(ctx,
					"INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
					id, genreID); err != nil {
					return err
				}
			}
		}
		grows, _ := tx.Query(ctx, movieGenresQuery, id)
		details.Genres, err = pgx.CollectRows(grows, pgx.RowToStructByName[models.Genre])
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ErrNotFound
		}
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode {
			return nil, storage.ErrConflict
		}
		return nil, err
	}
	return &details, nil
}

func (m *MovieModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM movies WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
