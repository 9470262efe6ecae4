package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/ruival/obracap/internal/adapter/http"
	"github.com/ruival/obracap/internal/adapter/http/handler"
	"github.com/ruival/obracap/internal/adapter/http/middleware"
	"github.com/ruival/obracap/internal/adapter/repository/memory"
	postgresRepo "github.com/ruival/obracap/internal/adapter/repository/postgres"
	redisRepo "github.com/ruival/obracap/internal/adapter/repository/redis"
	"github.com/ruival/obracap/internal/infrastructure/config"
	"github.com/ruival/obracap/internal/infrastructure/eventpublisher"
	"github.com/ruival/obracap/internal/infrastructure/logger"
	"github.com/ruival/obracap/internal/infrastructure/metrics"
	"github.com/ruival/obracap/internal/infrastructure/postgres"
	"github.com/ruival/obracap/internal/infrastructure/redis"
	"github.com/ruival/obracap/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger
	zerolog.DefaultContextLogger = &appLogger

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis. The engine runs without it: no cache, no idempotency.
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	movementRepo := postgresRepo.NewMovementRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger)

	var (
		cache            usecase.Cache
		idempotencyStore usecase.IdempotencyStore
	)
	if redisClient != nil {
		cache = redisRepo.NewCache(redisClient)
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
	}

	// Reference directories. Payroll, supply and project data live in other
	// systems; until their connectors land, lookups resolve soft to nothing.
	projects := memory.NewProjectDirectory(nil)
	payroll := memory.NewPayrollDirectory()
	supply := memory.NewSupplyDirectory()

	m := metrics.New()
	publisher := eventpublisher.NewLogPublisher(appLogger)

	// Initialize use cases
	registrarUC := usecase.NewRegistrarUseCase(txManager, movementRepo, idGen, retrier, cache, publisher, m, appLogger)
	queryUC := usecase.NewQueryUseCase(movementRepo, projects, cache, m, appLogger)
	resolverUC := usecase.NewReferenceResolver(payroll, supply, m, appLogger)

	// Initialize handlers
	movementHandler := handler.NewMovementHandler(registrarUC, queryUC, resolverUC)
	summaryHandler := handler.NewSummaryHandler(queryUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		MovementHandler:  movementHandler,
		SummaryHandler:   summaryHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      rateLimiter,
		Logger:           appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
