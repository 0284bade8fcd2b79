package handlers

import (
	"github.com/go-chi/chi/v5"
)

func RegisterDraftRoutes(r chi.Router) {
	r.Route("/drafts", func(r chi.Router) {
		r.Get("/", ListDraftsHandler)
		r.Post("/", CreateDraftHandler)
		r.Route("/{draft_id}", func(r chi.Router) {
			r.Get("/", GetDraftHandler)
			r.Put("/", UpdateDraftHandler)
			r.Delete("/", DeleteDraftHandler)
			r.Post("/validate", ValidateDraftHandler)
		})
	})
}
