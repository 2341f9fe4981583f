package main

import (
	"net/http"
)

func (app *Application) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := app.services.Stats.Collect(r.Context(), app.contextUserID(r))
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, stats)
}
