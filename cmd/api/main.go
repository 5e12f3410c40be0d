package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/velora-beauty/procurement-backend/api/routes"
	"github.com/velora-beauty/procurement-backend/internal/compare"
	"github.com/velora-beauty/procurement-backend/internal/search"
	"github.com/velora-beauty/procurement-backend/pkg/config"
	"github.com/velora-beauty/procurement-backend/pkg/logger"
	"github.com/velora-beauty/procurement-backend/pkg/metrics"
	"github.com/velora-beauty/procurement-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	searchMetrics := metrics.NewSearchMetrics(prometheus.DefaultRegisterer)
	comparisonMetrics := metrics.NewComparisonMetrics(prometheus.DefaultRegisterer)

	scorer, err := compare.NewScorer(compare.Weights{
		Price:    cfg.Scoring.PriceWeight,
		Rating:   cfg.Scoring.RatingWeight,
		Delivery: cfg.Scoring.DeliveryWeight,
	})
	if err != nil {
		logg.Error(context.Background(), "invalid scoring weights", err)
		os.Exit(1)
	}
	compareService, err := compare.NewService(compare.NewEngine(scorer), logg, comparisonMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create comparison service", err)
		os.Exit(1)
	}

	source, err := search.NewHTTPSource(cfg.QuoteSource.Endpoints, &http.Client{
		Timeout: cfg.QuoteSource.RequestTimeout,
	}, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create quote source", err)
		os.Exit(1)
	}
	mapper, err := search.NewTierMapper(cfg.Delivery.TierMap)
	if err != nil {
		logg.Error(context.Background(), "invalid delivery tier mapping", err)
		os.Exit(1)
	}
	coordinator, err := search.NewCoordinator(source, mapper, logg, searchMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create search coordinator", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, redisClient, compareService, coordinator),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
