// Package api provides the public read-only HTTP surface that the
// exchange-office website polls for current rates.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"operkassa/internal/domain"

	"go.uber.org/zap"
)

// RateLister defines the rate reading operation required by the handlers.
type RateLister interface {
	List() ([]domain.Currency, error)
}

// Pinger checks that the underlying store is reachable.
type Pinger interface {
	Ping() error
}

// RatesHandler handles HTTP requests for rates and health checks.
type RatesHandler struct {
	rates  RateLister
	pinger Pinger
	logger *zap.Logger
}

// NewRatesHandler creates a new rates handler
func NewRatesHandler(rates RateLister, pinger Pinger, logger *zap.Logger) *RatesHandler {
	return &RatesHandler{
		rates:  rates,
		pinger: pinger,
		logger: logger,
	}
}

type ratesResponse struct {
	Currencies []domain.Currency `json:"currencies"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

type healthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Rates returns every currency record as JSON
func (h *RatesHandler) Rates(w http.ResponseWriter, r *http.Request) {
	records, err := h.rates.List()
	if err != nil {
		h.logger.Error("Failed to list rates", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:  "Не удалось получить курсы",
			Detail: err.Error(),
		})
		return
	}

	if records == nil {
		records = []domain.Currency{}
	}
	writeJSON(w, http.StatusOK, ratesResponse{Currencies: records})
}

// Health reports whether the store is reachable
func (h *RatesHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(); err != nil {
		h.logger.Error("Health check failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, healthResponse{
			Status: "error",
			Detail: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
