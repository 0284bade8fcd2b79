package handlers

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRouteRoutes(r chi.Router) {
	r.Route("/routes", func(r chi.Router) {
		r.Get("/", ListRoutesHandler)
		r.Post("/sanitize", SanitizeRouteHandler)
		r.Post("/validate", ValidateRouteHandler)
		r.Post("/hostname", SuggestHostnameHandler)
		r.Post("/favicon", FaviconHandler)
	})
}
