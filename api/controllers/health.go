package controllers

import (
	"net/http"

	"github.com/velora-beauty/procurement-backend/api/responses"
	"github.com/velora-beauty/procurement-backend/pkg/config"
	"github.com/velora-beauty/procurement-backend/pkg/redis"
)

const envHeader = "X-Procure-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, redisClient redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		status := map[string]string{"status": "ready", "redis": "ok"}
		code := http.StatusOK
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()); err != nil {
				status["status"] = "degraded"
				status["redis"] = err.Error()
				code = http.StatusServiceUnavailable
			}
		}
		responses.WriteSuccessStatus(w, code, status)
	}
}
