package handlers

import (
	"github.com/go-chi/chi/v5"
)

func RegisterSettingsRoutes(r chi.Router) {
	r.Route("/settings/locale", func(r chi.Router) {
		r.Get("/", GetLocaleSettingHandler)
		r.Put("/", SetLocaleSettingHandler)
		r.Post("/", SetLocaleSettingHandler)
	})
}
