package genres

import (
	"context"
	"errors"
	"log/slog"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

var ErrGenreNotFound = errors.New("genre not found")

type GenresStorage interface {
	List(ctx context.Context) ([]models.Genre, error)
	Get(ctx context.Context, id int64) (*models.Genre, error)
}

type GenreService struct {
	log     *slog.Logger
	storage GenresStorage
}

func New(log *slog.Logger, storage GenresStorage) *GenreService {
	return &GenreService{log: log, storage: storage}
}

func (s *GenreService) List(ctx context.Context) ([]models.Genre, error) {
	const op = "genres.GenreService.List"
	listed, err := s.storage.List(ctx)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return listed, nil
}

func (s *GenreService) Get(ctx context.Context, id int64) (*models.Genre, error) {
	const op = "genres.GenreService.Get"
	log := s.log.With("op", op, "id", id)
	genre, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("genre not found")
			return nil, ErrGenreNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return genre, nil
}
