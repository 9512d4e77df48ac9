package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/taskhive/taskhive/internal/infrastructure/http/handlers"
	"github.com/taskhive/taskhive/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler      *handlers.AuthHandler
	ProjectsHandler  *handlers.ProjectsHandler
	TasksHandler     *handlers.TasksHandler
	DashboardHandler *handlers.DashboardHandler
	HealthHandler    *handlers.HealthHandler
	RequireAuth      func(http.Handler) http.Handler
	Log              zerolog.Logger
	Secure           func(http.Handler) http.Handler
	CORS             func(http.Handler) http.Handler
	IPRateLimit      func(http.Handler) http.Handler
	Metrics          bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/login", cfg.AuthHandler.Login)
			r.Group(func(r chi.Router) {
				r.Use(cfg.RequireAuth)
				r.Get("/me", cfg.AuthHandler.Me)
			})
		})

		r.Route("/projects", func(r chi.Router) {
			r.Use(cfg.RequireAuth)
			r.Get("/", cfg.ProjectsHandler.List)
			r.Post("/", cfg.ProjectsHandler.Create)
			r.Get("/{id}", cfg.ProjectsHandler.Get)
			r.Put("/{id}", cfg.ProjectsHandler.Update)
			r.Delete("/{id}", cfg.ProjectsHandler.Delete)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Use(cfg.RequireAuth)
			r.Get("/", cfg.TasksHandler.List)
			r.Post("/", cfg.TasksHandler.Create)
			r.Get("/project/{projectId}", cfg.TasksHandler.ListByProject)
			r.Get("/{id}", cfg.TasksHandler.Get)
			r.Put("/{id}", cfg.TasksHandler.Update)
			r.Delete("/{id}", cfg.TasksHandler.Delete)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(cfg.RequireAuth)
			r.Get("/stats", cfg.DashboardHandler.Stats)
			r.Get("/projects/{projectId}/stats", cfg.DashboardHandler.ProjectStats)
		})
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
