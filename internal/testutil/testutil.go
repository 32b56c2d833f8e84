package testutil

import (
	"time"

	"operkassa/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestCurrency creates a test currency record
func NewTestCurrency(code, name string, buy, sell float64) domain.Currency {
	return domain.Currency{
		Code:      code,
		Flag:      "xx",
		Name:      name,
		ShowRates: true,
		Buy:       buy,
		Sell:      sell,
		Updated:   time.Now(),
	}
}
