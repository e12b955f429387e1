package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/user/assessment-finder/internal/ai/gemini"
	"github.com/user/assessment-finder/internal/api"
	"github.com/user/assessment-finder/internal/cache"
	"github.com/user/assessment-finder/internal/catalog"
	"github.com/user/assessment-finder/internal/config"
	"github.com/user/assessment-finder/internal/matcher"
	"github.com/user/assessment-finder/internal/monitoring"
	"github.com/user/assessment-finder/internal/storage"
)

func main() {
	// Initialize structured logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}

	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)

	// Catalog acquisition pipeline
	fetchTimeout := time.Duration(cfg.FetchTimeout) * time.Second
	var fetcher catalog.Fetcher = catalog.NewHTTPFetcher(cfg.CatalogURL, fetchTimeout)
	if cfg.RenderJS {
		fetcher = catalog.NewChromeFetcher(cfg.CatalogURL, fetchTimeout)
	}
	scraper := catalog.NewScraper(fetcher, catalog.NewExtractor(cfg.CatalogURL), metrics, logger)

	// Optional Redis tier so restarts within the TTL reuse the snapshot
	var store cache.SnapshotStore
	if cfg.RedisAddr != "" {
		redisStore := storage.NewSnapshotStore(cfg.RedisAddr)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisStore.Ping(pingCtx); err != nil {
			logger.Warn("redis unreachable, snapshot persistence disabled", zap.Error(err))
		} else {
			store = redisStore
		}
		cancel()
	}

	catalogCache := cache.New(scraper, store, time.Duration(cfg.CacheTTL)*time.Second, metrics, logger)

	// Missing or broken Gemini credentials downgrade matching to keyword
	// scoring, they never prevent startup.
	var generator matcher.ContentGenerator
	if cfg.GeminiAPIKey != "" {
		g, err := gemini.NewGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("gemini init failed, AI matching disabled", zap.Error(err))
		} else {
			generator = g
			logger.Info("AI matching enabled", zap.String("model", g.Model()))
		}
	} else {
		logger.Info("no gemini api key configured, using keyword matching only")
	}

	assessmentMatcher := matcher.New(generator, metrics, logger)

	server := api.NewServer(cfg, catalogCache, assessmentMatcher, logger)

	// Graceful Shutdown
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("port", cfg.ServerPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
