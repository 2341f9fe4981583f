package services

import (
	"log/slog"

	"moviecatalog/proj/internal/config"
	"moviecatalog/proj/internal/mails"
	"moviecatalog/proj/internal/services/admin"
	"moviecatalog/proj/internal/services/auth"
	"moviecatalog/proj/internal/services/favorites"
	"moviecatalog/proj/internal/services/genres"
	"moviecatalog/proj/internal/services/movies"
	"moviecatalog/proj/internal/services/people"
	"moviecatalog/proj/internal/services/reviews"
	"moviecatalog/proj/internal/services/stats"
	"moviecatalog/proj/internal/services/watchlist"
	pgmodels "moviecatalog/proj/internal/storage/postgres/models"
)

type Services struct {
	Auth          *auth.AuthService
	Movies        *movies.MovieService
	Genres        *genres.GenreService
	Cast          *people.CastService
	Screenwriters *people.ScreenwriterService
	Reviews       *reviews.ReviewService
	Watchlist     *watchlist.WatchlistService
	Favorites     *favorites.FavoriteService
	Stats         *stats.StatsService
	Admin         *admin.AdminService
}

func New(log *slog.Logger, cfg *config.Config, storage *pgmodels.Models, taskExecutor admin.TaskExecutor) *Services {
	mailer := mails.New(cfg.SMTP, log)

	return &Services{
		Auth:          auth.New(log, storage.Users, cfg.Auth.Secret, cfg.Auth.TokenTTL),
		Movies:        movies.New(log, storage.Movies, storage.Cast, storage.Screenwriters),
		Genres:        genres.New(log, storage.Genres),
		Cast:          people.NewCast(log, storage.Cast, storage.Movies),
		Screenwriters: people.NewScreenwriters(log, storage.Screenwriters, storage.Movies),
		Reviews:       reviews.New(log, storage.Reviews, storage.Movies),
		Watchlist:     watchlist.New(log, storage.Watchlist, storage.Movies),
		Favorites:     favorites.New(log, storage.Favorites, storage.Movies),
		Stats:         stats.New(log, storage.Stats),
		Admin:         admin.New(log, storage.AdminRequests, storage.Users, mailer, taskExecutor, cfg.SMTP.AdminEmail),
	}
}
