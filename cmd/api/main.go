package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lnurl-gateway/config"
	"lnurl-gateway/internal/adapter/graphql"
	httpHandler "lnurl-gateway/internal/adapter/http/handler"
	pgStorage "lnurl-gateway/internal/adapter/storage/postgres"
	redisStorage "lnurl-gateway/internal/adapter/storage/redis"
	"lnurl-gateway/internal/core/ports"
	"lnurl-gateway/internal/service"
	"lnurl-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("ledger_url", cfg.Ledger.URL).
		Bool("nostr", cfg.Nostr.Enabled()).
		Msg("Starting LNURL gateway")

	ctx := context.Background()

	// Ledger client. The injected timeout covers every GraphQL call.
	ledger := graphql.NewClient(cfg.Ledger.URL, &http.Client{Timeout: cfg.Ledger.Timeout}, log)

	var healthCheckers []ports.HealthChecker

	// Optional Redis: zap correlation + rate limiting.
	var zapStore ports.CorrelationStore
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		zapStore = redisStorage.NewZapStore(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else if cfg.Nostr.Enabled() {
		log.Warn().Msg("Nostr enabled without Redis; zap correlation writes are disabled")
	}

	// Optional PostgreSQL: audit trail.
	var auditRepo ports.AuditRepository
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		auditRepo = pgStorage.NewAuditRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	// Core services
	priceSvc := service.NewPriceService(ledger, log)
	payRequestSvc := service.NewPayRequestService(ledger, priceSvc, cfg, log)
	payCallbackSvc := service.NewPayCallbackService(ledger, zapStore, cfg, log)
	cardSvc := service.NewCardService(ledger, cfg, log)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PayRequestSvc:  payRequestSvc,
		PayCallbackSvc: payCallbackSvc,
		CardSvc:        cardSvc,
		RateLimitStore: rateLimitStore,
		AuditSvc:       auditSvc,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
