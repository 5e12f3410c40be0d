package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App             AppConfig
	Redis           RedisConfig
	QuoteSource     QuoteSourceConfig
	Scoring         ScoringConfig
	SearchRateLimit SearchRateLimitConfig
	Delivery        DeliveryConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Scoring.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PROCURE_APP_ENV" required:"true"`
	Port         string `envconfig:"PROCURE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PROCURE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PROCURE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"PROCURE_REDIS_URL"`
	Address      string        `envconfig:"PROCURE_REDIS_ADDR"`
	Password     string        `envconfig:"PROCURE_REDIS_PASSWORD"`
	DB           int           `envconfig:"PROCURE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PROCURE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PROCURE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PROCURE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PROCURE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PROCURE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// QuoteSourceConfig points at the marketplace aggregation endpoints the
// search coordinator fans out to.
type QuoteSourceConfig struct {
	Endpoints      []string      `envconfig:"PROCURE_QUOTE_SOURCE_ENDPOINTS" required:"true"`
	RequestTimeout time.Duration `envconfig:"PROCURE_QUOTE_SOURCE_TIMEOUT" default:"10s"`
}

// ScoringConfig carries the composite-score weights. The defaults mirror the
// engine constants; overrides must still sum to 1.0.
type ScoringConfig struct {
	PriceWeight    float64 `envconfig:"PROCURE_SCORING_PRICE_WEIGHT" default:"0.4"`
	RatingWeight   float64 `envconfig:"PROCURE_SCORING_RATING_WEIGHT" default:"0.3"`
	DeliveryWeight float64 `envconfig:"PROCURE_SCORING_DELIVERY_WEIGHT" default:"0.3"`
}

const weightSumTolerance = 1e-9

func (s ScoringConfig) validate() error {
	for name, w := range map[string]float64{
		"price":    s.PriceWeight,
		"rating":   s.RatingWeight,
		"delivery": s.DeliveryWeight,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("scoring %s weight %v out of [0,1]", name, w)
		}
	}
	sum := s.PriceWeight + s.RatingWeight + s.DeliveryWeight
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("scoring weights must sum to 1.0, got %v", sum)
	}
	return nil
}

type SearchRateLimitConfig struct {
	Window  time.Duration `envconfig:"PROCURE_SEARCH_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit int           `envconfig:"PROCURE_SEARCH_RATE_LIMIT_IP_LIMIT" default:"30"`
}

// DeliveryConfig holds the integrator-supplied free-text to delivery-tier
// mapping, merged over the built-in defaults. Format: "phrase:tier,...".
type DeliveryConfig struct {
	TierMap map[string]string `envconfig:"PROCURE_DELIVERY_TIER_MAP"`
}
