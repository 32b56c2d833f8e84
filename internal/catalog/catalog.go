// Package catalog holds the static list of currencies the exchange office
// works with. Adding a currency means adding a row here; the dialogue and
// store logic never change.
package catalog

import (
	"time"

	"operkassa/internal/domain"
)

// Entry describes one catalog currency with its first-run default rates.
type Entry struct {
	Code        string
	Flag        string
	Name        string
	ShowRates   bool
	DefaultBuy  float64
	DefaultSell float64
}

var entries = []Entry{
	{Code: "USD_WHITE", Flag: "us", Name: "Доллар США (белый)", ShowRates: true, DefaultBuy: 95.5, DefaultSell: 97.8},
	{Code: "USD_BLUE", Flag: "us", Name: "Доллар США (синий)", ShowRates: true, DefaultBuy: 94.0, DefaultSell: 96.5},
	{Code: "EUR", Flag: "eu", Name: "Евро", ShowRates: true, DefaultBuy: 105.2, DefaultSell: 107.9},
	{Code: "GBP", Flag: "gb", Name: "Фунт стерлингов", ShowRates: false},
	{Code: "CNY", Flag: "cn", Name: "Китайский юань", ShowRates: false},
	{Code: "RUB", Flag: "ru", Name: "Российский рубль", ShowRates: true, DefaultBuy: 1.0, DefaultSell: 1.0},
}

// All returns the catalog entries in display order.
func All() []Entry {
	result := make([]Entry, len(entries))
	copy(result, entries)
	return result
}

// Lookup finds a catalog entry by currency code.
func Lookup(code string) (Entry, bool) {
	for _, e := range entries {
		if e.Code == code {
			return e, true
		}
	}
	return Entry{}, false
}

// SeedRecords builds the full set of first-run currency records.
// Unrated currencies get zero rates; all records share the given timestamp.
func SeedRecords(now time.Time) []domain.Currency {
	records := make([]domain.Currency, 0, len(entries))
	for _, e := range entries {
		records = append(records, domain.Currency{
			Code:      e.Code,
			Flag:      e.Flag,
			Name:      e.Name,
			ShowRates: e.ShowRates,
			Buy:       e.DefaultBuy,
			Sell:      e.DefaultSell,
			Updated:   now,
		})
	}
	return records
}
