// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/arogyapath/portal/internal/config"
	"github.com/arogyapath/portal/internal/dashboard"
	"github.com/arogyapath/portal/internal/guard"
	"github.com/arogyapath/portal/internal/pharmacy"
	"github.com/arogyapath/portal/internal/pkg/httputil"
	"github.com/arogyapath/portal/internal/session"
	sessionfile "github.com/arogyapath/portal/internal/session/file"
	"github.com/arogyapath/portal/internal/triage"
	"github.com/arogyapath/portal/internal/version"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Entry points the route guard redirects to.
const (
	publicEntry    = "/api/v1/auth"
	protectedEntry = "/api/v1/dashboard"
)

// App represents the application instance.
type App struct {
	config        *config.Config
	logger        *slog.Logger
	sessions      *session.Store
	server        *http.Server
	metricsServer *http.Server
}

// New creates a new application instance. The session store attempts to
// restore the persisted record before the first request is served.
func New(cfg *config.Config) (*App, error) {
	logger := initLogger(cfg.Log)

	checker := session.NewSimulator(cfg.Auth.CheckDelay)
	records := sessionfile.NewStore(cfg.Session.RecordPath)
	sessions := session.NewStore(checker, records)
	sessions.Restore()

	app := &App{
		config:   cfg,
		logger:   logger,
		sessions: sessions,
	}

	app.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           app.setupRouter(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Metrics server on separate port
	metricsRouter := chi.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.Handler())

	app.metricsServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.MetricsPort),
		Handler:           metricsRouter,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return app, nil
}

// Run starts the HTTP servers.
func (a *App) Run() error {
	go func() {
		a.logger.Info("starting metrics server",
			"host", a.config.Server.Host,
			"port", a.config.Server.MetricsPort,
		)
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("metrics server error", "error", err)
		}
	}()

	a.logger.Info("starting server",
		"host", a.config.Server.Host,
		"port", a.config.Server.Port,
	)

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down servers")

	var wg sync.WaitGroup
	var errs []error
	var mu sync.Mutex

	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := a.server.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown server: %w", err))
			mu.Unlock()
		}
	}()

	go func() {
		defer wg.Done()
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
			mu.Unlock()
		}
	}()

	wg.Wait()

	return errors.Join(errs...)
}

// Router returns the HTTP handler for testing.
func (a *App) Router() http.Handler {
	return a.server.Handler
}

// Sessions returns the session store. Used in tests to inspect state.
func (a *App) Sessions() *session.Store {
	return a.sessions
}

func (a *App) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Metrics middleware must be first to measure full request time
	r.Use(httputil.MetricsMiddleware)

	// CORS must be early to handle preflight requests before other middleware
	r.Use(httputil.CORSMiddleware(a.config.CORS.AllowedOrigins))
	r.Use(middleware.RequestID)
	r.Use(httputil.RequestLoggerMiddleware(a.logger))
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", a.healthzHandler)
	r.Get("/readyz", a.readyzHandler)
	r.Get("/version", a.versionHandler)

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")
		http.ServeFile(w, r, "api/openapi/openapi.yaml")
	})

	r.Get("/docs", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>ArogyaPath Portal API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
        SwaggerUIBundle({
            url: "/api/openapi.yaml",
            dom_id: '#swagger-ui',
            presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
            layout: "BaseLayout"
        });
    </script>
</body>
</html>`))
	})

	routeGuard := guard.New(a.sessions, publicEntry, protectedEntry)

	sessionHandler := session.NewHandler(a.sessions)
	dashboardHandler := dashboard.NewHandler(dashboard.NewService())
	pharmacyHandler := pharmacy.NewHandler(pharmacy.NewService())
	chatHandler := triage.NewHandler(triage.NewEngine(), triage.HandlerConfig{
		TypingDelay: a.config.Chat.TypingDelay,
		RateLimit:   a.config.Chat.RateLimit,
		RateBurst:   a.config.Chat.RateBurst,
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Lifecycle operations stay unguarded; they move the session
		// between states.
		sessionHandler.RegisterRoutes(r)

		// The auth view itself is public-only: signed-in users are sent
		// to the dashboard.
		r.Group(func(r chi.Router) {
			r.Use(routeGuard.Public)
			r.Get("/auth", a.authViewHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(routeGuard.Protected)

			sessionHandler.RegisterProtectedRoutes(r)
			dashboardHandler.RegisterRoutes(r)
			pharmacyHandler.RegisterRoutes(r)
			chatHandler.RegisterRoutes(r)
		})
	})

	return r
}

// authViewHandler serves the public entry point payload: what a client
// needs to render the login/signup screen.
func (a *App) authViewHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.Success(w, http.StatusOK, map[string]interface{}{
		"title": "ArogyaPath - Rural Healthcare Platform",
		"roles": []string{"patient", "doctor", "pharmacist"},
	})
}

func (a *App) healthzHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.Text(w, http.StatusOK, "OK")
}

func (a *App) readyzHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.Text(w, http.StatusOK, "OK")
}

func (a *App) versionHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{
		"version":    version.Version,
		"commit":     version.GitCommit,
		"build_date": version.BuildDate,
	})
}

func initLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
