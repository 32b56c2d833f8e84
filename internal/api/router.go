package api

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
)

// NewRouter constructs the HTTP handler serving the public rates API.
//
// Routes:
//
//	GET /rates   → current rates for the website
//	GET /health  → store liveness check
func NewRouter(handler *RatesHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(withRequestLogging(logger))
	r.Use(allowAnyOrigin)

	r.Get("/rates", handler.Rates)
	r.Get("/health", handler.Health)

	return r
}

// withRequestLogging logs each request with method, path and duration
func withRequestLogging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("Request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// allowAnyOrigin permits the website to fetch rates from any domain
func allowAnyOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}
