package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"resiosctl/config"
	"resiosctl/core"
	"resiosctl/database"
	"resiosctl/i18n"
	"resiosctl/logger"
	"resiosctl/models"
	"resiosctl/remote"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// Remote is the part of the Cosmos client the handlers depend on.
type Remote interface {
	core.SessionChecker
	core.DNSResolver
	Config(ctx context.Context) (*models.Config, error)
}

var cosmos Remote

// SetRemote installs the Cosmos client used by the handlers. A nil remote
// makes every server-backed endpoint answer 503.
func SetRemote(r Remote) {
	cosmos = r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("writeJSON: Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Message: msg})
}

func writeValidationErrors(w http.ResponseWriter, errs []string) {
	writeJSON(w, http.StatusUnprocessableEntity, models.ValidationErrorResponse{Errors: errs})
}

// decodeJSON reads a JSON body into dst. An empty body is an error.
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	return nil
}

// remoteErrorStatus maps a Cosmos client error to the status we answer with.
func remoteErrorStatus(err error) int {
	switch {
	case errors.Is(err, remote.ErrNoRemote):
		return http.StatusServiceUnavailable
	case errors.Is(err, remote.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

// messagesFor picks the validation language: ?lang=, then Accept-Language,
// then the stored locale setting, then the configured default.
func messagesFor(r *http.Request) *i18n.Printer {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return i18n.NewPrinter(lang)
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return i18n.NewPrinterAccept(accept)
	}
	return i18n.NewPrinter(storedLocale())
}

func storedLocale() string {
	if database.DB != nil {
		if locale, err := database.GetSetting(models.LocaleKey); err == nil && locale != "" {
			return locale
		}
	}
	return config.AppConfig.Console.Locale
}

// configSourceHeader tells clients whether the configuration came from the
// server or from the local snapshot.
const configSourceHeader = "X-Config-Source"

// loadConfigOrFail loads the server configuration (or its snapshot) and
// answers the error itself.
func loadConfigOrFail(w http.ResponseWriter, r *http.Request) (*models.Config, bool) {
	var src remote.ConfigFetcher
	if cosmos != nil {
		src = cosmos
	}
	cfg, source, err := remote.LoadConfig(r.Context(), src)
	if err != nil {
		logger.Error("%s %s: Error loading server configuration: %v", r.Method, r.URL.Path, err)
		writeError(w, remoteErrorStatus(err), fmt.Sprintf("Failed to load server configuration: %v", err))
		return nil, false
	}
	w.Header().Set(configSourceHeader, source)
	return cfg, true
}

// loadRoutes is loadConfigOrFail reduced to the route collection.
func loadRoutes(w http.ResponseWriter, r *http.Request) (models.RouteCollection, bool) {
	cfg, ok := loadConfigOrFail(w, r)
	if !ok {
		return nil, false
	}
	routes := cfg.Routes()
	if routes == nil {
		routes = models.RouteCollection{}
	}
	return routes, true
}

func consoleOrigin() core.Origin {
	return core.ParseOrigin(config.ConsoleOrigin())
}

func faviconOptions() core.FaviconOptions {
	return core.FaviconOptions{
		Demo:      config.AppConfig.Console.Demo,
		DemoIcons: config.AppConfig.Console.DemoIcons,
		Console:   consoleOrigin(),
	}
}
