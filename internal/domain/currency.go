package domain

import "time"

// Currency represents a single exchange rate record.
// JSON tags match the public read API payload.
type Currency struct {
	Code      string    `json:"code"`
	Flag      string    `json:"flag"`
	Name      string    `json:"name"`
	ShowRates bool      `json:"showRates"`
	Buy       float64   `json:"buy"`
	Sell      float64   `json:"sell"`
	Updated   time.Time `json:"updated"`
}

// UpdatedTimeString returns the last-update time in HH:MM format
// for bot messages.
func (c Currency) UpdatedTimeString() string {
	return c.Updated.Format("15:04")
}
