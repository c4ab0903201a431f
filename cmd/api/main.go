package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yield-spend-gateway/config"
	httpHandler "yield-spend-gateway/internal/adapter/http/handler"
	pgStorage "yield-spend-gateway/internal/adapter/storage/postgres"
	redisStorage "yield-spend-gateway/internal/adapter/storage/redis"
	"yield-spend-gateway/internal/adapter/upstream/invoker"
	"yield-spend-gateway/internal/adapter/upstream/solana"
	"yield-spend-gateway/internal/core/ports"
	"yield-spend-gateway/internal/service"
	"yield-spend-gateway/pkg/logger"
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
		Msg("Starting Yield Spend Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	nonceRepo := pgStorage.NewNonceRepo(pool)
	sessionRepo := pgStorage.NewSessionRepo(pool)
	allocRepo := pgStorage.NewAllocationRepo(pool)
	prepaidRepo := pgStorage.NewPrepaidRepo(pool)
	serviceRepo := pgStorage.NewServiceRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	yieldCache := redisStorage.NewYieldCache(rdb, cfg.Yield.CacheRetention)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize upstream adapters
	balanceSource, err := solana.NewStakedBalanceClient(cfg.Solana)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize staked balance client")
	}
	serviceInvoker := invoker.NewHTTPInvoker(nil, cfg.Payment.InvokeTimeout, log)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.Token.Secret, cfg.Token.Issuer)
	sigVerifier := service.NewEd25519SignatureService()

	referenceDate, err := time.Parse(time.RFC3339, cfg.Yield.ReferenceDate)
	if err != nil {
		log.Fatal().Err(err).Str("reference_date", cfg.Yield.ReferenceDate).Msg("Invalid yield reference date")
	}

	// Initialize business services
	sessionSvc := service.NewSessionService(
		nonceRepo, sessionRepo, sigVerifier, tokenSvc,
		cfg.Token.Issuer, cfg.Payment.NonceTTL, cfg.Token.Expiry, log,
	)
	yieldSvc := service.NewYieldService(
		balanceSource, yieldCache, allocRepo,
		cfg.Yield.APY, referenceDate, cfg.Yield.CacheTTL, log,
	)
	allocSvc := service.NewAllocationService(transactor, allocRepo, yieldSvc, cfg.Payment.AllocationTTL, log)
	prepaidSvc := service.NewPrepaidService(transactor, prepaidRepo, log)
	catalogSvc := service.NewCatalogService(serviceRepo)
	paymentSvc := service.NewPaymentService(
		catalogSvc, yieldSvc, allocSvc, prepaidSvc, serviceInvoker,
		service.PaymentConfig{
			Treasury:      cfg.Payment.Treasury,
			Asset:         cfg.Payment.Asset,
			Currency:      cfg.Payment.Currency,
			AllocationTTL: cfg.Payment.AllocationTTL,
		},
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:     sessionSvc,
		YieldSvc:       yieldSvc,
		CatalogSvc:     catalogSvc,
		PrepaidSvc:     prepaidSvc,
		PaymentSvc:     paymentSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// Background sweeper: reclaims expired allocations, purges dead nonces
	// and sessions.
	sweepCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	sweeper := service.NewSweeperService(allocSvc, nonceRepo, sessionRepo, cfg.Sweep.Interval, log)
	go sweeper.Run(sweepCtx)

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

	stopSweeper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
