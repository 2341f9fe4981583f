package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(app.Recoverer)
	router.Use(app.RateLimiter)
	router.Use(app.Authenticate)
	router.Route("/api", func(r chi.Router) {
		r.Get("/healthcheck", app.healthcheck)
		r.Get("/stats", app.getStats)
		r.Route("/movies", func(r chi.Router) {
			r.Get("/", app.getMovies)
			r.Get("/{id}", app.getMovie)
			r.With(app.requireAuthenticatedUser).Post("/", app.createMovie)
			r.With(app.requireAuthenticatedUser).Put("/{id}", app.updateMovie)
			r.With(app.requireAuthenticatedUser).Delete("/{id}", app.deleteMovie)
		})
		r.Route("/genres", func(r chi.Router) {
			r.Get("/", app.getGenres)
			r.Get("/{id}", app.getGenre)
		})
		r.Route("/cast", func(r chi.Router) {
			r.Get("/", app.getCastMembers)
			r.Get("/{id}", app.getCastMember)
			r.Get("/movie/{movieId}", app.getMovieCast)
			r.With(app.requireAuthenticatedUser).Post("/", app.createCastMember)
			r.With(app.requireAuthenticatedUser).Post("/movie/{movieId}", app.addCastToMovie)
			r.With(app.requireAuthenticatedUser).Delete("/movie/{movieId}/{castId}", app.removeCastFromMovie)
		})
		r.Route("/screenwriters", func(r chi.Router) {
			r.Get("/", app.getScreenwriters)
			r.Get("/{id}", app.getScreenwriter)
			r.Get("/movie/{movieId}", app.getMovieScreenwriters)
			r.With(app.requireAuthenticatedUser).Post("/", app.createScreenwriter)
			r.With(app.requireAuthenticatedUser).Post("/movie/{movieId}", app.addScreenwriterToMovie)
			r.With(app.requireAuthenticatedUser).Delete("/movie/{movieId}/{screenwriterId}", app.removeScreenwriterFromMovie)
		})
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", app.getReviews)
			r.Get("/{id}", app.getReview)
			r.With(app.requireAuthenticatedUser).Post("/", app.createReview)
			r.With(app.requireAuthenticatedUser).Put("/{id}", app.updateReview)
			r.With(app.requireAuthenticatedUser).Delete("/{id}", app.deleteReview)
		})
		r.Route("/watchlist", func(r chi.Router) {
			r.Get("/", app.getWatchlist)
			r.With(app.requireAuthenticatedUser).Post("/", app.addToWatchlist)
			r.With(app.requireAuthenticatedUser).Put("/{id}", app.updateWatchlistEntry)
			r.With(app.requireAuthenticatedUser).Delete("/{id}", app.removeWatchlistEntry)
			r.With(app.requireAuthenticatedUser).Delete("/movie/{movieId}", app.removeWatchlistByMovie)
		})
		r.Route("/favorites", func(r chi.Router) {
			r.Get("/check/{movieId}", app.checkFavorite)
			r.With(app.requireAuthenticatedUser).Get("/", app.getFavorites)
			r.With(app.requireAuthenticatedUser).Post("/", app.addFavorite)
			r.With(app.requireAuthenticatedUser).Delete("/{movieId}", app.removeFavorite)
		})
		r.Route("/admin", func(r chi.Router) {
			r.With(app.requireAuthenticatedUser).Post("/request", app.requestAdminAccess)
			r.With(app.requireAdminUser).Get("/requests", app.getAdminRequests)
			r.With(app.requireAdminUser).Put("/requests/{id}", app.decideAdminRequest)
		})
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", app.signup)
			r.Post("/login", app.login)
			r.With(app.requireAuthenticatedUser).Get("/me", app.me)
		})
	})
	return router
}
