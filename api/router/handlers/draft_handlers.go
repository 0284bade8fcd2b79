package handlers

import (
	"errors"
	"net/http"

	"resiosctl/core"
	"resiosctl/database"
	"resiosctl/logger"
	"resiosctl/models"

	"github.com/go-chi/chi/v5"
)

func draftErrorStatus(err error) int {
	if errors.Is(err, database.ErrDraftNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ListDraftsHandler returns every stored draft.
func ListDraftsHandler(w http.ResponseWriter, r *http.Request) {
	drafts, err := database.ListDrafts()
	if err != nil {
		logger.Error("ListDraftsHandler: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list drafts")
		return
	}
	writeJSON(w, http.StatusOK, drafts)
}

// CreateDraftHandler sanitizes and stores a route. Drafts are not validated on
// save so an incomplete form can be kept.
func CreateDraftHandler(w http.ResponseWriter, r *http.Request) {
	var route models.Route
	if err := decodeJSON(r, &route); err != nil {
		logger.Error("CreateDraftHandler: Error decoding request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	draft, err := database.CreateDraft(core.SanitizeRoute(route))
	if err != nil {
		logger.Error("CreateDraftHandler: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save draft")
		return
	}
	writeJSON(w, http.StatusCreated, draft)
}

func GetDraftHandler(w http.ResponseWriter, r *http.Request) {
	draft, err := database.GetDraft(chi.URLParam(r, "draft_id"))
	if err != nil {
		writeError(w, draftErrorStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func UpdateDraftHandler(w http.ResponseWriter, r *http.Request) {
	var route models.Route
	if err := decodeJSON(r, &route); err != nil {
		logger.Error("UpdateDraftHandler: Error decoding request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	draft, err := database.UpdateDraft(chi.URLParam(r, "draft_id"), core.SanitizeRoute(route))
	if err != nil {
		if !errors.Is(err, database.ErrDraftNotFound) {
			logger.Error("UpdateDraftHandler: %v", err)
		}
		writeError(w, draftErrorStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func DeleteDraftHandler(w http.ResponseWriter, r *http.Request) {
	if err := database.DeleteDraft(chi.URLParam(r, "draft_id")); err != nil {
		writeError(w, draftErrorStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ValidateDraftHandler validates a stored draft against the server's routes.
func ValidateDraftHandler(w http.ResponseWriter, r *http.Request) {
	draft, err := database.GetDraft(chi.URLParam(r, "draft_id"))
	if err != nil {
		writeError(w, draftErrorStatus(err), err.Error())
		return
	}
	routes, ok := loadRoutes(w, r)
	if !ok {
		return
	}
	errs := core.ValidateRoute(draft.Route, routes, messagesFor(r))
	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	writeJSON(w, http.StatusOK, validateRouteResponse{Valid: true, Errors: errs, Route: draft.Route})
}
