package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownCurrency is returned when a rate update targets a code
	// that is not present in the catalog.
	ErrUnknownCurrency = errors.New("unknown currency code")

	// ErrInvalidRate is returned when rate input cannot be parsed as a number.
	ErrInvalidRate = errors.New("invalid rate format")

	// ErrNonPositiveRate is returned when a rate is zero or negative.
	ErrNonPositiveRate = errors.New("rate must be greater than zero")

	// ErrSellNotAboveBuy is returned when the sell rate does not exceed the buy rate.
	ErrSellNotAboveBuy = errors.New("sell rate must be above buy rate")
)

// ParseRate parses operator rate input. Comma is accepted as a decimal
// separator ("105,2" and "105.2" are equivalent).
func ParseRate(input string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	rate, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, ErrInvalidRate
	}
	return rate, nil
}

// FormatRate formats a rate for display with two decimal places.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f", rate)
}
