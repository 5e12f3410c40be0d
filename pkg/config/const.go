package config

const EnvPrefix = "procure"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Env var names referenced verbatim by tests and bootstrap error messages.
const (
	EnvAppEnv               = "PROCURE_APP_ENV"
	EnvPort                 = "PROCURE_APP_PORT"
	EnvRedisURL             = "PROCURE_REDIS_URL"
	EnvQuoteSourceEndpoints = "PROCURE_QUOTE_SOURCE_ENDPOINTS"
	EnvScoringPriceWeight   = "PROCURE_SCORING_PRICE_WEIGHT"
	EnvScoringRatingWeight  = "PROCURE_SCORING_RATING_WEIGHT"
	EnvScoringDeliveryWt    = "PROCURE_SCORING_DELIVERY_WEIGHT"
	EnvDeliveryTierMap      = "PROCURE_DELIVERY_TIER_MAP"
)
