package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}

	if got := cfg.QuoteSource.RequestTimeout; got != 10*time.Second {
		t.Fatalf("expected default quote source timeout 10s, got %v", got)
	}

	if len(cfg.QuoteSource.Endpoints) != 2 {
		t.Fatalf("expected 2 quote source endpoints, got %v", cfg.QuoteSource.Endpoints)
	}

	if cfg.Scoring.PriceWeight != 0.4 || cfg.Scoring.RatingWeight != 0.3 || cfg.Scoring.DeliveryWeight != 0.3 {
		t.Fatalf("unexpected default scoring weights: %+v", cfg.Scoring)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsWeightsNotSummingToOne(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvScoringPriceWeight, "0.5")
	t.Setenv(EnvScoringRatingWeight, "0.3")
	t.Setenv(EnvScoringDeliveryWt, "0.3")

	if _, err := Load(); err == nil {
		t.Fatal("expected weight-sum validation error")
	}
}

func TestLoad_ParsesDeliveryTierMap(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvDeliveryTierMap, "same-day:fastest,3-5 days:standard")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Delivery.TierMap["same-day"] != "fastest" {
		t.Fatalf("unexpected tier map: %v", cfg.Delivery.TierMap)
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvQuoteSourceEndpoints, "https://mkt-a.example.com/offers,https://mkt-b.example.com/offers")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "production"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
