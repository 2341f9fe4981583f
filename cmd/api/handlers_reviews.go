package main

import (
	"errors"
	"net/http"
	"time"

	"moviecatalog/proj/internal/domain/filters"
	"moviecatalog/proj/internal/services/reviews"
)

func (app *Application) getReviews(w http.ResponseWriter, r *http.Request) {
	var f filters.ReviewFilters
	if !app.decodeQuery(w, r, &f) {
		return
	}
	f.Normalize()
	listing, err := app.services.Reviews.List(r.Context(), f)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"reviews": listing, "count": len(listing)})
}

func (app *Application) getReview(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	review, err := app.services.Reviews.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, reviews.ErrReviewNotFound) {
			app.Http.NotFound(w, r, "Review not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, review)
}

type createReviewInput struct {
	MovieID     *int64   `json:"movie_id"`
	Rating      *int     `json:"rating"`
	ReviewText  *string  `json:"review_text"`
	WatchedDate *string  `json:"watched_date"`
	Tags        []string `json:"tags"`
}

func parseWatchedDate(w http.ResponseWriter, r *http.Request, app *Application, raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		app.Http.BadRequest(w, r, "Watched date must be in YYYY-MM-DD format")
		return nil, false
	}
	return &parsed, true
}

func (app *Application) createReview(w http.ResponseWriter, r *http.Request) {
	var input createReviewInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if input.MovieID == nil {
		app.Http.BadRequest(w, r, "Movie ID is required")
		return
	}
	if input.Rating == nil || *input.Rating < 1 || *input.Rating > 10 {
		app.Http.BadRequest(w, r, "Rating must be between 1 and 10")
		return
	}
	watchedDate, ok := parseWatchedDate(w, r, app, input.WatchedDate)
	if !ok {
		return
	}
	review, err := app.services.Reviews.Create(
		r.Context(), *input.MovieID, app.contextUserID(r), *input.Rating, input.ReviewText, watchedDate, input.Tags,
	)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrMovieNotFound):
			app.Http.NotFound(w, r, "Movie not found")
		case errors.Is(err, reviews.ErrAlreadyReviewed):
			app.Http.BadRequest(w, r, "You have already reviewed this movie")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Created(w, r, review)
}

type updateReviewInput struct {
	Rating      *int     `json:"rating"`
	ReviewText  *string  `json:"review_text"`
	WatchedDate *string  `json:"watched_date"`
	Tags        []string `json:"tags"`
}

func (app *Application) updateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	var input updateReviewInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 10) {
		app.Http.BadRequest(w, r, "Rating must be between 1 and 10")
		return
	}
	watchedDate, ok := parseWatchedDate(w, r, app, input.WatchedDate)
	if !ok {
		return
	}
	review, err := app.services.Reviews.Update(
		r.Context(), id, app.contextUserID(r), input.Rating, input.ReviewText, watchedDate, input.Tags,
	)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound):
			app.Http.NotFound(w, r, "Review not found")
		case errors.Is(err, reviews.ErrNotOwner):
			app.Http.Forbidden(w, r, "You can only edit your own reviews")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, review)
}

func (app *Application) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	if err := app.services.Reviews.Delete(r.Context(), id, app.contextUserID(r)); err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound):
			app.Http.NotFound(w, r, "Review not found")
		case errors.Is(err, reviews.ErrNotOwner):
			app.Http.Forbidden(w, r, "You can only delete your own reviews")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"message": "Review deleted successfully"})
}
