package main

import (
	"errors"
	"net/http"

	"moviecatalog/proj/internal/services/genres"
)

func (app *Application) getGenres(w http.ResponseWriter, r *http.Request) {
	listing, err := app.services.Genres.List(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"genres": listing, "count": len(listing)})
}

func (app *Application) getGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	genre, err := app.services.Genres.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, genres.ErrGenreNotFound) {
			app.Http.NotFound(w, r, "Genre not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, genre)
}
