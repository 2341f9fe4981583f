package main

import (
	"errors"
	"net/http"

	"moviecatalog/proj/internal/services/people"
)

func (app *Application) getScreenwriters(w http.ResponseWriter, r *http.Request) {
	writers, err := app.services.Screenwriters.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"screenwriters": writers, "count": len(writers)})
}

func (app *Application) getScreenwriter(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	writer, credits, err := app.services.Screenwriters.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, people.ErrScreenwriterNotFound) {
			app.Http.NotFound(w, r, "Screenwriter not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{
		"id":     writer.ID,
		"name":   writer.Name,
		"bio":    writer.Bio,
		"movies": credits,
	})
}

func (app *Application) getMovieScreenwriters(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieId")
	if !ok {
		return
	}
	writers, err := app.services.Screenwriters.ForMovie(r.Context(), movieID)
	if err != nil {
		if errors.Is(err, people.ErrMovieNotFound) {
			app.Http.NotFound(w, r, "Movie not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"screenwriters": writers, "count": len(writers)})
}

type createScreenwriterInput struct {
	Name string  `json:"name"`
	Bio  *string `json:"bio"`
}

func (app *Application) createScreenwriter(w http.ResponseWriter, r *http.Request) {
	var input createScreenwriterInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if input.Name == "" {
		app.Http.BadRequest(w, r, "Name is required")
		return
	}
	writer, err := app.services.Screenwriters.Create(r.Context(), input.Name, input.Bio)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, writer)
}

type addScreenwriterToMovieInput struct {
	ScreenwriterID    *int64 `json:"screenwriter_id"`
	ScreenwriterOrder *int   `json:"screenwriter_order"`
}

func (app *Application) addScreenwriterToMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieId")
	if !ok {
		return
	}
	var input addScreenwriterToMovieInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if input.ScreenwriterID == nil {
		app.Http.BadRequest(w, r, "Screenwriter ID is required")
		return
	}
	order := 0
	if input.ScreenwriterOrder != nil {
		order = *input.ScreenwriterOrder
	}
	link, err := app.services.Screenwriters.AddToMovie(r.Context(), movieID, *input.ScreenwriterID, order)
	if err != nil {
		switch {
		case errors.Is(err, people.ErrMovieNotFound):
			app.Http.NotFound(w, r, "Movie not found")
		case errors.Is(err, people.ErrScreenwriterNotFound):
			app.Http.NotFound(w, r, "Screenwriter not found")
		case errors.Is(err, people.ErrAlreadyLinked):
			app.Http.Conflict(w, r, "Screenwriter is already linked to this movie")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Created(w, r, link)
}

func (app *Application) removeScreenwriterFromMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieId")
	if !ok {
		return
	}
	screenwriterID, ok := app.extractIDParam(w, r, "screenwriterId")
	if !ok {
		return
	}
	if err := app.services.Screenwriters.RemoveFromMovie(r.Context(), movieID, screenwriterID); err != nil {
		if errors.Is(err, people.ErrLinkNotFound) {
			app.Http.NotFound(w, r, "Screenwriter is not linked to this movie")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"message": "Screenwriter removed from movie"})
}
