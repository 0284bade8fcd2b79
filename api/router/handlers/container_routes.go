package handlers

import (
	"github.com/go-chi/chi/v5"
)

func RegisterContainerRoutes(r chi.Router) {
	r.Get("/containers/{name}/routes", GetContainerRoutesHandler)
	r.Get("/containers/{name}/jobs", GetContainerJobsHandler)
}
