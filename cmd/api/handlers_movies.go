package main

import (
	"errors"
	"net/http"

	"moviecatalog/proj/internal/domain/filters"
	"moviecatalog/proj/internal/services/movies"
)

func (app *Application) getMovies(w http.ResponseWriter, r *http.Request) {
	var f filters.MovieFilters
	if !app.decodeQuery(w, r, &f) {
		return
	}
	f.Normalize()
	listing, err := app.services.Movies.List(r.Context(), f, app.contextUserID(r))
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"movies": listing, "count": len(listing)})
}

type movieDetailQuery struct {
	IncludeCast          *bool `schema:"include_cast"`
	IncludeScreenwriters *bool `schema:"include_screenwriters"`
	IncludeGenres        *bool `schema:"include_genres"`
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func (app *Application) getMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	var q movieDetailQuery
	if !app.decodeQuery(w, r, &q) {
		return
	}
	includes := movies.DetailIncludes{
		Cast:          boolOrDefault(q.IncludeCast, true),
		Screenwriters: boolOrDefault(q.IncludeScreenwriters, true),
		Genres:        boolOrDefault(q.IncludeGenres, true),
	}
	movie, err := app.services.Movies.Get(r.Context(), id, includes)
	if err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			app.Http.NotFound(w, r, "Movie not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, movie)
}

type createMovieInput struct {
	Title     string   `json:"title"`
	Year      *int32   `json:"year"`
	Director  *string  `json:"director"`
	Genres    []string `json:"genres"`
	PosterURL *string  `json:"poster_url"`
	ImdbID    *string  `json:"imdb_id"`
}

func (app *Application) createMovie(w http.ResponseWriter, r *http.Request) {
	var input createMovieInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if input.Title == "" {
		app.Http.BadRequest(w, r, "Title is required")
		return
	}
	movie, err := app.services.Movies.Create(
		r.Context(), input.Title, input.Year, input.Director, input.PosterURL, input.ImdbID, input.Genres,
	)
	if err != nil {
		if errors.Is(err, movies.ErrMovieAlreadyExists) {
			app.Http.Conflict(w, r, "Movie already exists")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, movie)
}

type updateMovieInput struct {
	Title     *string   `json:"title"`
	Year      *int32    `json:"year"`
	Director  *string   `json:"director"`
	Genres    *[]string `json:"genres"`
	PosterURL *string   `json:"poster_url"`
	ImdbID    *string   `json:"imdb_id"`
}

func (app *Application) updateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	var input updateMovieInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if input.Title != nil && *input.Title == "" {
		app.Http.BadRequest(w, r, "Title must not be empty")
		return
	}
	movie, err := app.services.Movies.Update(
		r.Context(), id, input.Title, input.Year, input.Director, input.PosterURL, input.ImdbID, input.Genres,
	)
	if err != nil {
		switch {
		case errors.Is(err, movies.ErrMovieNotFound):
			app.Http.NotFound(w, r, "Movie not found")
		case errors.Is(err, movies.ErrMovieAlreadyExists):
			app.Http.Conflict(w, r, "Movie already exists")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, movie)
}

func (app *Application) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	if err := app.services.Movies.Delete(r.Context(), id); err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			app.Http.NotFound(w, r, "Movie not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"message": "Movie deleted successfully"})
}
