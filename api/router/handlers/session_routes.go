package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// dnsRequestsPerMinute caps lookups forwarded to the Cosmos server per client.
const dnsRequestsPerMinute = 60

func RegisterSessionRoutes(r chi.Router) {
	r.Get("/login-status", GetLoginStatusHandler)
	r.With(httprate.LimitByIP(dnsRequestsPerMinute, time.Minute)).Get("/dns", CheckDNSHandler)
	r.Get("/menu", GetMenuHandler)
	r.Get("/page-routes", GetPageRoutesHandler)
}
