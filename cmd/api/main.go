package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creator-paygate/config"
	httpHandler "creator-paygate/internal/adapter/http/handler"
	"creator-paygate/internal/adapter/storage/blobfs"
	memStorage "creator-paygate/internal/adapter/storage/memory"
	pgStorage "creator-paygate/internal/adapter/storage/postgres"
	redisStorage "creator-paygate/internal/adapter/storage/redis"
	"creator-paygate/internal/core/domain"
	"creator-paygate/internal/core/ports"
	"creator-paygate/internal/ledger"
	"creator-paygate/internal/metrics"
	"creator-paygate/internal/service"
	"creator-paygate/internal/x402"
	"creator-paygate/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
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
		Str("storage", cfg.Storage.Driver).
		Msg("Starting Creator PayGate")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize repositories per storage driver
	var (
		contentRepo    ports.ContentRepository
		creatorRepo    ports.CreatorRepository
		healthCheckers []ports.HealthChecker
		seedDemo       bool
	)
	switch cfg.Storage.Driver {
	case "memory":
		contentRepo = memStorage.NewContentRepo()
		creatorRepo = memStorage.NewCreatorRepo()
		seedDemo = true
		log.Info().Msg("In-memory storage active, data will not survive restarts")
	default:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		contentRepo = pgStorage.NewContentRepo(pool)
		creatorRepo = pgStorage.NewCreatorRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	// Initialize blob store
	var blobs ports.BlobStore
	if cfg.Storage.Driver == "memory" {
		blobs = memStorage.NewBlobStore()
	} else {
		store, err := blobfs.NewStore(cfg.Blob.Dir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Blob.Dir).Msg("Failed to open blob store")
		}
		blobs = store
	}

	// Initialize optional Redis-backed rate limiting
	var rateLimitStore ports.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(creatorRepo, hashSvc, tokenSvc)
	contentSvc := service.NewContentService(contentRepo, blobs)

	if seedDemo {
		if err := seedDemoContent(ctx, contentSvc, log); err != nil {
			log.Warn().Err(err).Msg("Demo content seeding failed")
		}
	}

	// Initialize facilitator client when settlement is configured
	var facilitator ports.Facilitator
	if cfg.Facilitator.Configured() {
		facilitator = x402.NewFacilitatorClient(cfg.Facilitator.URL, cfg.Facilitator.SettleTimeout, log)
		log.Info().Str("url", cfg.Facilitator.URL).Str("network", cfg.Facilitator.Network).Msg("Facilitator configured")
	} else {
		log.Warn().Msg("No facilitator configured, priced content will never be released")
	}

	recorder := metrics.NewPrometheusRecorder(nil)
	gateSvc := service.NewGateService(contentRepo, blobs, facilitator, service.GateConfig{
		Network: cfg.Facilitator.Network,
		Asset: x402.Asset{
			Address:  cfg.Facilitator.AssetAddress,
			Decimals: cfg.Facilitator.AssetDecimals,
		},
		ResourceBaseURL: cfg.Facilitator.ResourceBaseURL,
		SettleTimeout:   cfg.Facilitator.SettleTimeout,
	}, recorder, log)

	// Initialize the payment-splitting ledger and its sweep worker
	if cfg.Chain.Enabled {
		controller := common.HexToAddress(cfg.Chain.ControllerAddress)
		platform := common.HexToAddress(cfg.Chain.PlatformAddress)

		events := ledger.NewLog()
		state := ledger.NewState(events)
		registry := ledger.NewRegistry(state, controller, platform)
		if err := registry.SetPlatformFee(controller, uint64(cfg.Chain.PlatformFeePercent)); err != nil {
			log.Fatal().Err(err).Msg("Invalid platform fee")
		}
		if cfg.Chain.AssetAddress != "" {
			asset := common.HexToAddress(cfg.Chain.AssetAddress)
			if err := registry.AddAllowedAsset(controller, asset); err != nil {
				log.Fatal().Err(err).Msg("Failed to allow asset")
			}
		}

		sweeper := service.NewSweepService(registry, events, controller, cfg.Chain.SweepInterval, log)
		go sweeper.Run(ctx)
		log.Info().
			Str("controller", controller.Hex()).
			Int64("fee_percent", cfg.Chain.PlatformFeePercent).
			Dur("sweep_interval", cfg.Chain.SweepInterval).
			Msg("Payment-splitting ledger active")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		GateSvc:        gateSvc,
		ContentSvc:     contentSvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		ExposeMetrics:  true,
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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// seedDemoContent publishes a free and a priced article so a dev-mode server
// answers requests out of the box.
func seedDemoContent(ctx context.Context, contentSvc ports.ContentService, log zerolog.Logger) error {
	creatorID := uuid.New()

	free, err := contentSvc.Create(ctx, ports.CreateContentRequest{
		Title:     "Welcome",
		Kind:      domain.ContentKindArticle,
		Body:      "This article is free to read.",
		Price:     decimal.Zero,
		CreatorID: creatorID,
	})
	if err != nil {
		return err
	}

	paid, err := contentSvc.Create(ctx, ports.CreateContentRequest{
		Title:        "Premium",
		Kind:         domain.ContentKindArticle,
		Body:         "This article costs 0.10 to read.",
		Price:        decimal.RequireFromString("0.10"),
		PayeeAddress: "0x0000000000000000000000000000000000000001",
		CreatorID:    creatorID,
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("free_id", free.ID.String()).
		Str("paid_id", paid.ID.String()).
		Msg("Demo content seeded")
	return nil
}
