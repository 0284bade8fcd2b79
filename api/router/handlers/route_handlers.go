package handlers

import (
	"errors"
	"net/http"

	"resiosctl/core"
	"resiosctl/i18n"
	"resiosctl/logger"
	"resiosctl/models"
)

type validateRouteRequest struct {
	Route models.Route `json:"route"`
	// Routes, when present, replaces the server's collection for the
	// collision check.
	Routes *models.RouteCollection `json:"routes,omitempty"`
	// Editing names the route being edited; it does not collide with itself.
	Editing string `json:"editing,omitempty"`
}

type validateRouteResponse struct {
	Valid  bool         `json:"valid"`
	Errors []string     `json:"errors"`
	Route  models.Route `json:"route"`
}

type hostnameRequest struct {
	Name   string        `json:"name"`
	Route  *models.Route `json:"route,omitempty"`
	Origin string        `json:"origin,omitempty"`
}

type routeListing struct {
	models.Route
	Origin  string `json:"origin"`
	Favicon string `json:"favicon"`
}

// SanitizeRouteHandler normalizes a route from the edit form.
func SanitizeRouteHandler(w http.ResponseWriter, r *http.Request) {
	var route models.Route
	if err := decodeJSON(r, &route); err != nil {
		logger.Error("SanitizeRouteHandler: Error decoding request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, core.SanitizeRoute(route))
}

// ValidateRouteHandler sanitizes then validates a route. Invalid routes are
// answered with 422 and the list of messages.
func ValidateRouteHandler(w http.ResponseWriter, r *http.Request) {
	var req validateRouteRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Error("ValidateRouteHandler: Error decoding request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	var routes models.RouteCollection
	if req.Routes != nil {
		routes = *req.Routes
	} else {
		var ok bool
		if routes, ok = loadRoutes(w, r); !ok {
			return
		}
	}
	if req.Editing != "" {
		routes = routes.Without(req.Editing)
	}

	route := core.SanitizeRoute(req.Route)
	errs := core.ValidateRoute(route, routes, messagesFor(r))
	resp := validateRouteResponse{Valid: len(errs) == 0, Errors: errs, Route: route}
	if !resp.Valid {
		logger.Debug("ValidateRouteHandler: Route %q rejected: %v", route.Name, errs)
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SuggestHostnameHandler proposes a Host for a new route.
func SuggestHostnameHandler(w http.ResponseWriter, r *http.Request) {
	var req hostnameRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Error("SuggestHostnameHandler: Error decoding request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	origin := consoleOrigin()
	if req.Origin != "" {
		origin = core.ParseOrigin(req.Origin)
	}
	if origin.Host == "" {
		writeError(w, http.StatusBadRequest, "no console origin: pass origin or set console.origin")
		return
	}

	var routes models.RouteCollection
	if !core.IsDomain(origin.Hostname()) {
		// Only the port scan needs the existing hosts.
		var ok bool
		if routes, ok = loadRoutes(w, r); !ok {
			return
		}
	}

	host, err := core.HostnameFromName(req.Name, req.Route, routes, origin)
	if err != nil {
		if errors.Is(err, core.ErrNoPortsAvailable) {
			writeError(w, http.StatusConflict, messagesFor(r).Message(i18n.KeyNoPortsAvailable))
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"hostname": host})
}

// FaviconHandler returns the icon URL for a route; a null body asks for the
// default icon.
func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	var route *models.Route
	if err := decodeJSON(r, &route); err != nil {
		logger.Error("FaviconHandler: Error decoding request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": core.FaviconURL(route, faviconOptions())})
}

// ListRoutesHandler lists the server's routes with their origin and icon.
func ListRoutesHandler(w http.ResponseWriter, r *http.Request) {
	routes, ok := loadRoutes(w, r)
	if !ok {
		return
	}
	opts := faviconOptions()
	out := make([]routeListing, 0, len(routes))
	for i := range routes {
		out = append(out, routeListing{
			Route:   routes[i],
			Origin:  core.FullOrigin(routes[i], opts.Console),
			Favicon: core.FaviconURL(&routes[i], opts),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
