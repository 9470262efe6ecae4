package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ruival/obracap/internal/adapter/http/handler"
	"github.com/ruival/obracap/internal/adapter/http/middleware"
	"github.com/ruival/obracap/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	MovementHandler  *handler.MovementHandler
	SummaryHandler   *handler.SummaryHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Movements
		r.Route("/movements", func(r chi.Router) {
			r.Post("/", cfg.MovementHandler.Record)
			r.Post("/expense", cfg.MovementHandler.RecordExpense)
			r.Get("/", cfg.MovementHandler.List)
			r.Get("/{id}", cfg.MovementHandler.Get)
		})

		// Accounts
		r.Route("/accounts/{id}", func(r chi.Router) {
			r.Post("/funding", cfg.MovementHandler.RecordFunding)
			r.Get("/summary", cfg.SummaryHandler.AccountSummary)
		})

		// Reports
		r.Get("/summary", cfg.SummaryHandler.FilteredSummary)
		r.Get("/capital/projects", cfg.SummaryHandler.CapitalByProject)
	})

	return r
}
