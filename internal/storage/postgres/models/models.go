package models

import "moviecatalog/proj/internal/storage/postgres"

type Models struct {
	Movies        *MovieModel
	Genres        *GenreModel
	Cast          *CastModel
	Screenwriters *ScreenwriterModel
	Reviews       *ReviewModel
	Watchlist     *WatchlistModel
	Favorites     *FavoriteModel
	Users         *UserModel
	AdminRequests *AdminRequestModel
	Stats         *StatsModel
}

func New(db *postgres.Storage) *Models {
	return &Models{
		Movies:        &MovieModel{db.Conn},
		Genres:        &GenreModel{db.Conn},
		Cast:          &CastModel{db.Conn},
		Screenwriters: &ScreenwriterModel{db.Conn},
		Reviews:       &ReviewModel{db.Conn},
		Watchlist:     &WatchlistModel{db.Conn},
		Favorites:     &FavoriteModel{db.Conn},
		Users:         &UserModel{db.Conn},
		AdminRequests: &AdminRequestModel{db.Conn},
		Stats:         &StatsModel{db.Conn},
	}
}
