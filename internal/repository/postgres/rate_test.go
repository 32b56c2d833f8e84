package postgres

import (
	"fmt"
	"testing"
	"time"

	"operkassa/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRateRepo_GetAll(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedLen   int
		expectedError bool
	}{
		{
			name: "records found",
			mockRows: sqlmock.NewRows([]string{"code", "flag", "name", "show_rates", "buy", "sell", "updated"}).
				AddRow("USD_WHITE", "us", "Доллар США (белый)", true, 95.5, 97.8, now).
				AddRow("EUR", "eu", "Евро", true, 105.2, 107.9, now),
			expectedLen: 2,
		},
		{
			name:        "empty store",
			mockRows:    sqlmock.NewRows([]string{"code", "flag", "name", "show_rates", "buy", "sell", "updated"}),
			expectedLen: 0,
		},
		{
			name:          "query error",
			mockError:     fmt.Errorf("connection refused"),
			expectedError: true,
		},
		{
			name: "scan error",
			mockRows: sqlmock.NewRows([]string{"code", "flag", "name", "show_rates", "buy", "sell", "updated"}).
				AddRow("EUR", "eu", "Евро", "not-a-bool", 105.2, 107.9, now),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewRateRepo(db)

			query := "SELECT code, flag, name, show_rates, buy, sell, updated FROM rates"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WillReturnRows(tt.mockRows)
			}

			records, err := repo.GetAll()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, records, tt.expectedLen)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRateRepo_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRateRepo(db)

	record := domain.Currency{
		Code:      "EUR",
		Flag:      "eu",
		Name:      "Евро",
		ShowRates: true,
		Buy:       105.2,
		Sell:      107.9,
		Updated:   time.Now(),
	}

	mock.ExpectExec("INSERT INTO rates").
		WithArgs(record.Code, record.Flag, record.Name, record.ShowRates,
			record.Buy, record.Sell, record.Updated).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Upsert(record)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRepo_Upsert_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRateRepo(db)

	mock.ExpectExec("INSERT INTO rates").
		WillReturnError(fmt.Errorf("connection refused"))

	err = repo.Upsert(domain.Currency{Code: "EUR"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRepo_ReplaceAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRateRepo(db)

	now := time.Now()
	records := []domain.Currency{
		{Code: "USD_WHITE", Flag: "us", Name: "Доллар США (белый)", ShowRates: true, Buy: 95.5, Sell: 97.8, Updated: now},
		{Code: "GBP", Flag: "gb", Name: "Фунт стерлингов", Updated: now},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM rates").WillReturnResult(sqlmock.NewResult(0, 0))
	for _, r := range records {
		mock.ExpectExec("INSERT INTO rates").
			WithArgs(r.Code, r.Flag, r.Name, r.ShowRates, r.Buy, r.Sell, r.Updated).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	err = repo.ReplaceAll(records)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRepo_ReplaceAll_RollbackOnInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRateRepo(db)

	records := []domain.Currency{{Code: "EUR", Updated: time.Now()}}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM rates").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO rates").WillReturnError(fmt.Errorf("disk full"))
	mock.ExpectRollback()

	err = repo.ReplaceAll(records)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
