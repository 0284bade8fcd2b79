package handlers

import (
	"net/http"
	"time"

	"resiosctl/core"

	"github.com/go-chi/chi/v5"
)

// GetContainerRoutesHandler lists the SERVAPP routes pointing at a container.
func GetContainerRoutesHandler(w http.ResponseWriter, r *http.Request) {
	cfg, ok := loadConfigOrFail(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, core.ContainerRoutes(cfg, chi.URLParam(r, "name")))
}

// GetContainerJobsHandler lists the cron jobs bound to a container with their
// next run.
func GetContainerJobsHandler(w http.ResponseWriter, r *http.Request) {
	cfg, ok := loadConfigOrFail(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, core.ContainerJobs(cfg, chi.URLParam(r, "name"), time.Now()))
}
