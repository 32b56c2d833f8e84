package testutil

import (
	"operkassa/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRateRepository is a mock for repository.RateRepository
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) GetAll() ([]domain.Currency, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockRateRepository) Upsert(record domain.Currency) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockRateRepository) ReplaceAll(records []domain.Currency) error {
	args := m.Called(records)
	return args.Error(0)
}

// MockRateLister is a mock for api.RateLister
type MockRateLister struct {
	mock.Mock
}

func (m *MockRateLister) List() ([]domain.Currency, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// MockPinger is a mock for api.Pinger
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping() error {
	args := m.Called()
	return args.Error(0)
}
