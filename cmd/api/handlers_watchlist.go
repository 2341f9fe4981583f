package main

import (
	"errors"
	"net/http"

	"moviecatalog/proj/internal/services/watchlist"
)

func (app *Application) getWatchlist(w http.ResponseWriter, r *http.Request) {
	entries, err := app.services.Watchlist.List(r.Context(), app.contextUserID(r))
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"watchlist": entries, "count": len(entries)})
}

type addToWatchlistInput struct {
	MovieID  *int64  `json:"movie_id"`
	Notes    *string `json:"notes"`
	Priority *int    `json:"priority"`
}

func (app *Application) addToWatchlist(w http.ResponseWriter, r *http.Request) {
	var input addToWatchlistInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if input.MovieID == nil {
		app.Http.BadRequest(w, r, "Movie ID is required")
		return
	}
	priority := 0
	if input.Priority != nil {
		priority = *input.Priority
	}
	entry, err := app.services.Watchlist.Add(r.Context(), *input.MovieID, app.contextUserID(r), input.Notes, priority)
	if err != nil {
		switch {
		case errors.Is(err, watchlist.ErrMovieNotFound):
			app.Http.NotFound(w, r, "Movie not found")
		case errors.Is(err, watchlist.ErrAlreadyInWatchlist):
			app.Http.BadRequest(w, r, "Movie is already in your watchlist")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Created(w, r, entry)
}

type updateWatchlistInput struct {
	Notes    *string `json:"notes"`
	Priority *int    `json:"priority"`
}

func (app *Application) updateWatchlistEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	var input updateWatchlistInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	entry, err := app.services.Watchlist.Update(r.Context(), id, app.contextUserID(r), input.Notes, input.Priority)
	if err != nil {
		switch {
		case errors.Is(err, watchlist.ErrEntryNotFound):
			app.Http.NotFound(w, r, "Watchlist entry not found")
		case errors.Is(err, watchlist.ErrNotOwner):
			app.Http.Forbidden(w, r, "You can only edit your own watchlist")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, entry)
}

func (app *Application) removeWatchlistEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	if err := app.services.Watchlist.Remove(r.Context(), id, app.contextUserID(r)); err != nil {
		switch {
		case errors.Is(err, watchlist.ErrEntryNotFound):
			app.Http.NotFound(w, r, "Watchlist entry not found")
		case errors.Is(err, watchlist.ErrNotOwner):
			app.Http.Forbidden(w, r, "You can only edit your own watchlist")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"message": "Removed from watchlist"})
}

func (app *Application) removeWatchlistByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieId")
	if !ok {
		return
	}
	if err := app.services.Watchlist.RemoveByMovie(r.Context(), movieID, app.contextUserID(r)); err != nil {
		if errors.Is(err, watchlist.ErrEntryNotFound) {
			app.Http.NotFound(w, r, "Watchlist entry not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"message": "Removed from watchlist"})
}
