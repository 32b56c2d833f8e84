package repository

import "operkassa/internal/domain"

// RateRepository defines currency rate data operations
type RateRepository interface {
	GetAll() ([]domain.Currency, error)
	Upsert(record domain.Currency) error
	ReplaceAll(records []domain.Currency) error
}
