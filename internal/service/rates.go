package service

import (
	"fmt"
	"time"

	"operkassa/internal/catalog"
	"operkassa/internal/domain"
	"operkassa/internal/repository"

	"go.uber.org/zap"
)

// RateService handles rate reading, seeding and updates
type RateService struct {
	rateRepo repository.RateRepository
	logger   *zap.Logger
}

// NewRateService creates a new rate service
func NewRateService(rateRepo repository.RateRepository, logger *zap.Logger) *RateService {
	return &RateService{
		rateRepo: rateRepo,
		logger:   logger,
	}
}

// List returns all currency records. An empty store is seeded with the
// catalog defaults first, so the first read after deployment already
// returns the full catalog.
func (s *RateService) List() ([]domain.Currency, error) {
	records, err := s.rateRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read rates: %w", err)
	}

	if len(records) == 0 {
		if err := s.Seed(); err != nil {
			return nil, err
		}
		records, err = s.rateRepo.GetAll()
		if err != nil {
			return nil, fmt.Errorf("failed to read rates after seeding: %w", err)
		}
	}

	return records, nil
}

// Seed resets the store to the catalog defaults
func (s *RateService) Seed() error {
	records := catalog.SeedRecords(time.Now())
	if err := s.rateRepo.ReplaceAll(records); err != nil {
		s.logger.Error("Failed to seed rates", zap.Error(err))
		return fmt.Errorf("failed to seed rates: %w", err)
	}

	s.logger.Info("Seeded initial rates", zap.Int("count", len(records)))
	return nil
}

// UpdateRate validates and stores a new buy/sell pair for a currency.
// The code must exist in the catalog; buy and sell are written together.
func (s *RateService) UpdateRate(code string, buy, sell float64) (domain.Currency, error) {
	if buy <= 0 || sell <= 0 {
		return domain.Currency{}, domain.ErrNonPositiveRate
	}
	if sell <= buy {
		return domain.Currency{}, domain.ErrSellNotAboveBuy
	}

	entry, found := catalog.Lookup(code)
	if !found {
		return domain.Currency{}, domain.ErrUnknownCurrency
	}

	record := domain.Currency{
		Code:      entry.Code,
		Flag:      entry.Flag,
		Name:      entry.Name,
		ShowRates: entry.ShowRates,
		Buy:       buy,
		Sell:      sell,
		Updated:   time.Now(),
	}

	if err := s.rateRepo.Upsert(record); err != nil {
		s.logger.Error("Failed to upsert rate",
			zap.String("code", code),
			zap.Error(err),
		)
		return domain.Currency{}, fmt.Errorf("failed to update rate: %w", err)
	}

	s.logger.Info("Rate updated",
		zap.String("code", code),
		zap.Float64("buy", buy),
		zap.Float64("sell", sell),
	)

	return record, nil
}
