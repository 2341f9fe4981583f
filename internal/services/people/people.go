// Package people covers cast members and screenwriters together with their
// movie junction rows.
package people

import (
	"context"
	"errors"
	"log/slog"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

var (
	ErrCastMemberNotFound   = errors.New("cast member not found")
	ErrScreenwriterNotFound = errors.New("screenwriter not found")
	ErrMovieNotFound        = errors.New("movie not found")
	ErrAlreadyLinked        = errors.New("already linked to this movie")
	ErrLinkNotFound         = errors.New("not linked to this movie")
)

type CastStorage interface {
	List(ctx context.Context, search string) ([]models.CastMember, error)
	Get(ctx context.Context, id int64) (*models.CastMember, error)
	Credits(ctx context.Context, castID int64) ([]models.CastCredit, error)
	ForMovie(ctx context.Context, movieID int64) ([]models.MovieCastMember, error)
	Insert(ctx context.Context, name string, bio, profileImageURL *string) (*models.CastMember, error)
	Link(ctx context.Context, movieID, castID int64, characterName *string, castOrder int) (*models.MovieCastMember, error)
	Unlink(ctx context.Context, movieID, castID int64) error
}

type ScreenwriterStorage interface {
	List(ctx context.Context, search string) ([]models.Screenwriter, error)
	Get(ctx context.Context, id int64) (*models.Screenwriter, error)
	Credits(ctx context.Context, screenwriterID int64) ([]models.ScreenwriterCredit, error)
	ForMovie(ctx context.Context, movieID int64) ([]models.MovieScreenwriter, error)
	Insert(ctx context.Context, name string, bio *string) (*models.Screenwriter, error)
	Link(ctx context.Context, movieID, screenwriterID int64, order int) (*models.MovieScreenwriter, error)
	Unlink(ctx context.Context, movieID, screenwriterID int64) error
}

type MovieChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type CastService struct {
	log     *slog.Logger
	storage CastStorage
	movies  MovieChecker
}

func NewCast(log *slog.Logger, storage CastStorage, movies MovieChecker) *CastService {
	return &CastService{log: log, storage: storage, movies: movies}
}

func (s *CastService) List(ctx context.Context, search string) ([]models.CastMember, error) {
	const op = "people.CastService.List"
	members, err := s.storage.List(ctx, search)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return members, nil
}

// Get also loads the member's filmography.
func (s *CastService) Get(ctx context.Context, id int64) (*models.CastMember, []models.CastCredit, error) {
	const op = "people.CastService.Get"
	log := s.log.With("op", op, "id", id)
	member, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("cast member not found")
			return nil, nil, ErrCastMemberNotFound
		}
		log.Error(err.Error())
		return nil, nil, err
	}
	credits, err := s.storage.Credits(ctx, id)
	if err != nil {
		log.Error(err.Error())
		return nil, nil, err
	}
	return member, credits, nil
}

func (s *CastService) ForMovie(ctx context.Context, movieID int64) ([]models.MovieCastMember, error) {
	const op = "people.CastService.ForMovie"
	members, err := s.storage.ForMovie(ctx, movieID)
	if err != nil {
		s.log.With("op", op, "movie_id", movieID).Error(err.Error())
		return nil, err
	}
	return members, nil
}

func (s *CastService) Create(ctx context.Context, name string, bio, profileImageURL *string) (*models.CastMember, error) {
	const op = "people.CastService.Create"
	member, err := s.storage.Insert(ctx, name, bio, profileImageURL)
	if err != nil {
		s.log.With("op", op, "name", name).Error(err.Error())
		return nil, err
	}
	return member, nil
}

func (s *CastService) AddToMovie(ctx context.Context, movieID, castID int64, characterName *string, castOrder int) (*models.MovieCastMember, error) {
	const op = "people.CastService.AddToMovie"
	log := s.log.With("op", op, "movie_id", movieID, "cast_id", castID)
	movieExists, err := s.movies.Exists(ctx, movieID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if !movieExists {
		log.Info("movie not found")
		return nil, ErrMovieNotFound
	}
	if _, err := s.storage.Get(ctx, castID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("cast member not found")
			return nil, ErrCastMemberNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	linked, err := s.storage.Link(ctx, movieID, castID, characterName, castOrder)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("duplicate cast link rejected")
			return nil, ErrAlreadyLinked
		}
		log.Error(err.Error())
		return nil, err
	}
	return linked, nil
}

func (s *CastService) RemoveFromMovie(ctx context.Context, movieID, castID int64) error {
	const op = "people.CastService.RemoveFromMovie"
	log := s.log.With("op", op, "movie_id", movieID, "cast_id", castID)
	if err := s.storage.Unlink(ctx, movieID, castID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("cast link not found")
			return ErrLinkNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

type ScreenwriterService struct {
	log     *slog.Logger
	storage ScreenwriterStorage
	movies  MovieChecker
}

func NewScreenwriters(log *slog.Logger, storage ScreenwriterStorage, movies MovieChecker) *ScreenwriterService {
	return &ScreenwriterService{log: log, storage: storage, movies: movies}
}

func (s *ScreenwriterService) List(ctx context.Context, search string) ([]models.Screenwriter, error) {
	const op = "people.ScreenwriterService.List"
	writers, err := s.storage.List(ctx, search)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return writers, nil
}

func (s *ScreenwriterService) Get(ctx context.Context, id int64) (*models.Screenwriter, []models.ScreenwriterCredit, error) {
	const op = "people.ScreenwriterService.Get"
	log := s.log.With("op", op, "id", id)
	writer, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("screenwriter not found")
			return nil, nil, ErrScreenwriterNotFound
		}
		log.Error(err.Error())
		return nil, nil, err
	}
	credits, err := s.storage.Credits(ctx, id)
	if err != nil {
		log.Error(err.Error())
		return nil, nil, err
	}
	return writer, credits, nil
}

func (s *ScreenwriterService) ForMovie(ctx context.Context, movieID int64) ([]models.MovieScreenwriter, error) {
	const op = "people.ScreenwriterService.ForMovie"
	writers, err := s.storage.ForMovie(ctx, movieID)
	if err != nil {
		s.log.With("op", op, "movie_id", movieID).Error(err.Error())
		return nil, err
	}
	return writers, nil
}

func (s *ScreenwriterService) Create(ctx context.Context, name string, bio *string) (*models.Screenwriter, error) {
	const op = "people.ScreenwriterService.Create"
	writer, err := s.storage.Insert(ctx, name, bio)
	if err != nil {
		s.log.With("op", op, "name", name).Error(err.Error())
		return nil, err
	}
	return writer, nil
}

func (s *ScreenwriterService) AddToMovie(ctx context.Context, movieID, screenwriterID int64, order int) (*models.MovieScreenwriter, error) {
	const op = "people.ScreenwriterService.AddToMovie"
	log := s.log.With("op", op, "movie_id", movieID, "screenwriter_id", screenwriterID)
	movieExists, err := s.movies.Exists(ctx, movieID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if !movieExists {
		log.Info("movie not found")
		return nil, ErrMovieNotFound
	}
	if _, err := s.storage.Get(ctx, screenwriterID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("screenwriter not found")
			return nil, ErrScreenwriterNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	linked, err := s.storage.Link(ctx, movieID, screenwriterID, order)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("duplicate screenwriter link rejected")
			return nil, ErrAlreadyLinked
		}
		log.Error(err.Error())
		return nil, err
	}
	return linked, nil
}

func (s *ScreenwriterService) RemoveFromMovie(ctx context.Context, movieID, screenwriterID int64) error {
	const op = "people.ScreenwriterService.RemoveFromMovie"
	log := s.log.With("op", op, "movie_id", movieID, "screenwriter_id", screenwriterID)
	if err := s.storage.Unlink(ctx, movieID, screenwriterID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("screenwriter link not found")
			return ErrLinkNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}
