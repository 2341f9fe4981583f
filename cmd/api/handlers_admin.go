package main

import (
	"errors"
	"net/http"

	"moviecatalog/proj/internal/services/admin"
)

type adminRequestInput struct {
	RequestMessage *string `json:"request_message"`
}

func (app *Application) requestAdminAccess(w http.ResponseWriter, r *http.Request) {
	var input adminRequestInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	user := app.contextUser(r)
	if user.IsAdmin {
		app.Http.BadRequest(w, r, "You already have admin access")
		return
	}
	request, err := app.services.Admin.Request(r.Context(), user, input.RequestMessage)
	if err != nil {
		if errors.Is(err, admin.ErrRequestPending) {
			app.Http.BadRequest(w, r, "You already have a pending admin request")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, envelop{"message": "Admin request submitted", "request": request})
}

func (app *Application) getAdminRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := app.services.Admin.ListPending(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"requests": requests, "count": len(requests)})
}

type decideAdminRequestInput struct {
	Action string `json:"action"`
}

func (app *Application) decideAdminRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	var input decideAdminRequestInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if err := app.services.Admin.Decide(r.Context(), id, input.Action, app.contextUser(r)); err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidAction):
			app.Http.BadRequest(w, r, "Action must be either 'approve' or 'reject'")
		case errors.Is(err, admin.ErrRequestNotFound):
			app.Http.NotFound(w, r, "Admin request not found")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	outcome := "rejected"
	if input.Action == "approve" {
		outcome = "approved"
	}
	app.Http.Ok(w, r, envelop{"message": "Admin request " + outcome})
}
