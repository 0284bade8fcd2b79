package handlers

import (
	"context"
	"net/http"
	"time"

	"resiosctl/config"
	"resiosctl/core"
	"resiosctl/i18n"
	"resiosctl/logger"
	"resiosctl/models"
	"resiosctl/remote"
)

// GetLoginStatusHandler resolves where the console should navigate for the
// current session. ?path= and ?search= carry the browser location.
func GetLoginStatusHandler(w http.ResponseWriter, r *http.Request) {
	if cosmos == nil {
		writeError(w, http.StatusServiceUnavailable, remote.ErrNoRemote.Error())
		return
	}
	q := r.URL.Query()
	loc := core.Location{Path: q.Get("path"), Search: q.Get("search")}
	if loc.Path == "" {
		loc.Path = "/resios-ui/"
	}

	result, err := core.ResolveLoginStatus(r.Context(), cosmos, loc)
	if err != nil {
		logger.Error("GetLoginStatusHandler: %v", err)
		writeError(w, remoteErrorStatus(err), "Failed to check session: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, models.LoginStatusResponse{Result: result, OK: result == core.LoginOK})
}

type dnsResponse struct {
	core.HostCheckResult
	// Info reminds the user to check the resolved address.
	Info string `json:"info,omitempty"`
}

// CheckDNSHandler resolves ?host= through the Cosmos server. Hosts that are
// not domain names are answered without a lookup.
func CheckDNSHandler(w http.ResponseWriter, r *http.Request) {
	host := r.URL.Query().Get("host")
	if host == "" {
		writeError(w, http.StatusBadRequest, "host query parameter is required")
		return
	}
	if cosmos == nil && core.IsDomain(host) {
		writeError(w, http.StatusServiceUnavailable, remote.ErrNoRemote.Error())
		return
	}

	timeout := config.AppConfig.Remote.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	res := dnsResponse{HostCheckResult: core.CheckHostname(ctx, cosmos, host)}
	if res.IP != "" {
		res.Info = messagesFor(r).Messagef(i18n.KeyHostnamePointsTo, map[string]string{"hostIp": res.IP})
	}
	writeJSON(w, http.StatusOK, res)
}

// GetMenuHandler returns the navigation tree; ?admin=true includes admin-only
// entries.
func GetMenuHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, core.VisibleMenu(r.URL.Query().Get("admin") == "true"))
}

type pageRoutesResponse struct {
	Login []models.PageRoute `json:"login"`
	Main  []models.PageRoute `json:"main"`
}

type pageMatchResponse struct {
	Route  models.PageRoute  `json:"route"`
	Params map[string]string `json:"params"`
}

// GetPageRoutesHandler returns the console routing table, or with ?path= the
// page that path resolves to.
func GetPageRoutesHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSON(w, http.StatusOK, pageRoutesResponse{Login: core.LoginPageRoutes(), Main: core.MainPageRoutes()})
		return
	}
	pr, params, ok := core.MatchPageRoute(path)
	if !ok {
		writeError(w, http.StatusNotFound, "no console page for "+path)
		return
	}
	writeJSON(w, http.StatusOK, pageMatchResponse{Route: pr, Params: params})
}
