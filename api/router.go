package api

import (
	"net/http"
	"time"

	"resiosctl/api/router/handlers"
	"resiosctl/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options configures the API router.
type Options struct {
	Remote      handlers.Remote
	CORSOrigins []string
}

// NewRouter creates the API handler. All registered paths are relative to
// the /api base path.
func NewRouter(opts Options) http.Handler {
	handlers.SetRemote(opts.Remote)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Config-Source"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	handlers.RegisterHealthRoutes(r)
	handlers.RegisterRouteRoutes(r)
	handlers.RegisterContainerRoutes(r)
	handlers.RegisterSessionRoutes(r)
	handlers.RegisterDraftRoutes(r)
	handlers.RegisterSettingsRoutes(r)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		logger.Error("API SUB-ROUTER CATCH-ALL: Unhandled route relative to /api: %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})
	return r
}

// NewServerHandler mounts the API under /api.
func NewServerHandler(opts Options) http.Handler {
	root := chi.NewRouter()
	root.Mount("/api", NewRouter(opts))
	return root
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug("%s %s -> %d (%d bytes, %s) [%s]", r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start), middleware.GetReqID(r.Context()))
	})
}
