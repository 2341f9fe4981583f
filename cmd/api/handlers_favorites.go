package main

import (
	"errors"
	"net/http"

	"moviecatalog/proj/internal/services/favorites"
)

func (app *Application) getFavorites(w http.ResponseWriter, r *http.Request) {
	items, err := app.services.Favorites.List(r.Context(), app.contextUserID(r))
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"favorites": items, "count": len(items)})
}

func (app *Application) checkFavorite(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieId")
	if !ok {
		return
	}
	userID := app.contextUserID(r)
	if userID == 0 {
		app.Http.Ok(w, r, envelop{"is_favorite": false})
		return
	}
	isFavorite, err := app.services.Favorites.IsFavorite(r.Context(), movieID, userID)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"is_favorite": isFavorite})
}

type addFavoriteInput struct {
	MovieID *int64 `json:"movie_id"`
}

func (app *Application) addFavorite(w http.ResponseWriter, r *http.Request) {
	var input addFavoriteInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if input.MovieID == nil {
		app.Http.BadRequest(w, r, "Movie ID is required")
		return
	}
	favorite, err := app.services.Favorites.Add(r.Context(), *input.MovieID, app.contextUserID(r))
	if err != nil {
		switch {
		case errors.Is(err, favorites.ErrMovieNotFound):
			app.Http.NotFound(w, r, "Movie not found")
		case errors.Is(err, favorites.ErrAlreadyFavorite):
			app.Http.BadRequest(w, r, "Movie is already in your favorites")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Created(w, r, favorite)
}

func (app *Application) removeFavorite(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieId")
	if !ok {
		return
	}
	if err := app.services.Favorites.Remove(r.Context(), movieID, app.contextUserID(r)); err != nil {
		if errors.Is(err, favorites.ErrFavoriteNotFound) {
			app.Http.NotFound(w, r, "Favorite not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"message": "Removed from favorites"})
}
