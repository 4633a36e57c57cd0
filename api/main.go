package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/storefront/internal/auth"
	"github.com/rogerio-castellano/storefront/internal/config"
	"github.com/rogerio-castellano/storefront/internal/http/ban"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/http/router"
	"github.com/rogerio-castellano/storefront/internal/logging"
	"github.com/rogerio-castellano/storefront/internal/redissvc"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/storefront"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/storefront/docs"
)

// @title NeoShop Storefront API
// @version 1.0
// @description Catalog filtering and shopping cart for the NeoShop storefront.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var banStore ban.Store = ban.NewInMemoryStore()
	if cfg.Redis.Addr != "" {
		redisService, err := redissvc.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("could not connect to redis", zap.Error(err))
		}
		defer redisService.Close()
		banStore = ban.NewRedisStore(redisService)
		logger.Info("using redis ban store", zap.String("addr", cfg.Redis.Addr))
	}

	catalog := repo.NewDefaultCatalogRepository()
	ceiling := cfg.Catalog.PriceCeiling
	if ceiling == 0 {
		ceiling = catalog.PriceCeiling(cfg.Catalog.PriceStep)
	}

	sessions := storefront.NewSessions(catalog, ceiling)
	tokens := auth.NewSessionTokens(cfg.Session.Secret, cfg.Session.TokenTTL)
	limiter := rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	guard := ban.NewGuard(banStore, cfg.Ban.Strikes, cfg.Ban.Window, cfg.Ban.Duration, logger)

	if cfg.Session.TTL > 0 {
		go sessions.StartCleanupLoop(ctx, time.Minute, cfg.Session.TTL, logger)
	}
	go limiter.StartVisitorCleanupLoop(ctx, time.Minute, 5*time.Minute)
	go guard.StartDailyBanSummary(ctx)

	srv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: router.NewRouter(router.Dependencies{
			Server:     handlers.NewServer(catalog, sessions, tokens, guard, ceiling, logger),
			Tokens:     tokens,
			Sessions:   sessions,
			Limiter:    limiter,
			Guard:      guard,
			Logger:     logger,
			TrustProxy: cfg.HTTP.TrustProxy,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("server running",
		zap.String("addr", cfg.HTTP.Addr),
		zap.Int("products", len(catalog.GetAll())),
		zap.Int("price_ceiling", ceiling),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
