package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velora-beauty/procurement-backend/api/controllers"
	"github.com/velora-beauty/procurement-backend/api/middleware"
	"github.com/velora-beauty/procurement-backend/internal/compare"
	"github.com/velora-beauty/procurement-backend/internal/search"
	"github.com/velora-beauty/procurement-backend/pkg/config"
	"github.com/velora-beauty/procurement-backend/pkg/logger"
	"github.com/velora-beauty/procurement-backend/pkg/redis"
)

// NewRouter wires the HTTP surface: health probes, Prometheus metrics, the
// comparison endpoint, and the rate-limited quote search.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	compareService compare.Service,
	coordinator *search.Coordinator,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	searchPolicy := middleware.NewSearchRateLimitPolicy(
		"search",
		cfg.SearchRateLimit.Window,
		cfg.SearchRateLimit.IPLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, redisClient))
	})
	r.Get("/healthz", controllers.HealthLive(cfg))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/comparisons", controllers.CreateComparison(compareService, logg))
		r.Route("/search", func(r chi.Router) {
			searchRouter := r
			if redisClient != nil {
				searchRouter = r.With(middleware.SearchRateLimit(searchPolicy, redisClient, logg))
			}
			searchRouter.Get("/", controllers.SearchQuotes(coordinator, logg))
			r.Get("/current", controllers.CurrentSearch(coordinator))
		})
	})

	return r
}
