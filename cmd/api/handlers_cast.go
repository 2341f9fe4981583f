package main

import (
	"errors"
	"net/http"

	"moviecatalog/proj/internal/services/people"
)

func (app *Application) getCastMembers(w http.ResponseWriter, r *http.Request) {
	members, err := app.services.Cast.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"cast": members, "count": len(members)})
}

func (app *Application) getCastMember(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	member, credits, err := app.services.Cast.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, people.ErrCastMemberNotFound) {
			app.Http.NotFound(w, r, "Cast member not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{
		"id":                member.ID,
		"name":              member.Name,
		"bio":               member.Bio,
		"profile_image_url": member.ProfileImageURL,
		"movies":            credits,
	})
}

func (app *Application) getMovieCast(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieId")
	if !ok {
		return
	}
	members, err := app.services.Cast.ForMovie(r.Context(), movieID)
	if err != nil {
		if errors.Is(err, people.ErrMovieNotFound) {
			app.Http.NotFound(w, r, "Movie not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"cast": members, "count": len(members)})
}

type createCastMemberInput struct {
	Name            string  `json:"name"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profile_image_url"`
}

func (app *Application) createCastMember(w http.ResponseWriter, r *http.Request) {
	var input createCastMemberInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if input.Name == "" {
		app.Http.BadRequest(w, r, "Name is required")
		return
	}
	member, err := app.services.Cast.Create(r.Context(), input.Name, input.Bio, input.ProfileImageURL)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, member)
}

type addCastToMovieInput struct {
	CastID        *int64  `json:"cast_id"`
	CharacterName *string `json:"character_name"`
	CastOrder     *int    `json:"cast_order"`
}

func (app *Application) addCastToMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieId")
	if !ok {
		return
	}
	var input addCastToMovieInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if input.CastID == nil {
		app.Http.BadRequest(w, r, "Cast ID is required")
		return
	}
	castOrder := 0
	if input.CastOrder != nil {
		castOrder = *input.CastOrder
	}
	link, err := app.services.Cast.AddToMovie(r.Context(), movieID, *input.CastID, input.CharacterName, castOrder)
	if err != nil {
		switch {
		case errors.Is(err, people.ErrMovieNotFound):
			app.Http.NotFound(w, r, "Movie not found")
		case errors.Is(err, people.ErrCastMemberNotFound):
			app.Http.NotFound(w, r, "Cast member not found")
		case errors.Is(err, people.ErrAlreadyLinked):
			app.Http.Conflict(w, r, "Cast member is already linked to this movie")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Created(w, r, link)
}

func (app *Application) removeCastFromMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieId")
	if !ok {
		return
	}
	castID, ok := app.extractIDParam(w, r, "castId")
	if !ok {
		return
	}
	if err := app.services.Cast.RemoveFromMovie(r.Context(), movieID, castID); err != nil {
		if errors.Is(err, people.ErrLinkNotFound) {
			app.Http.NotFound(w, r, "Cast member is not linked to this movie")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"message": "Cast member removed from movie"})
}
