package postgres

import (
	"database/sql"

	"operkassa/internal/domain"
)

// RateRepo implements repository.RateRepository
type RateRepo struct {
	db *sql.DB
}

// NewRateRepo creates a new rate repository
func NewRateRepo(db *sql.DB) *RateRepo {
	return &RateRepo{db: db}
}

// GetAll returns all currency records in catalog order
func (r *RateRepo) GetAll() ([]domain.Currency, error) {
	query := `
		SELECT code, flag, name, show_rates, buy, sell, updated
		FROM rates
		ORDER BY id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Currency
	for rows.Next() {
		var c domain.Currency
		if err := rows.Scan(&c.Code, &c.Flag, &c.Name, &c.ShowRates, &c.Buy, &c.Sell, &c.Updated); err != nil {
			return nil, err
		}
		records = append(records, c)
	}

	return records, rows.Err()
}

// Upsert inserts a currency record or replaces its rates by code.
// Buy and sell are always written together.
func (r *RateRepo) Upsert(record domain.Currency) error {
	query := `
		INSERT INTO rates (code, flag, name, show_rates, buy, sell, updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (code)
		DO UPDATE SET buy = EXCLUDED.buy, sell = EXCLUDED.sell, updated = EXCLUDED.updated
	`
	_, err := r.db.Exec(query,
		record.Code, record.Flag, record.Name, record.ShowRates,
		record.Buy, record.Sell, record.Updated,
	)
	return err
}

// ReplaceAll deletes every record and inserts the given set in one transaction.
// Used only by the seeding routine.
func (r *RateRepo) ReplaceAll(records []domain.Currency) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM rates`); err != nil {
		tx.Rollback()
		return err
	}

	query := `
		INSERT INTO rates (code, flag, name, show_rates, buy, sell, updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, record := range records {
		if _, err := tx.Exec(query,
			record.Code, record.Flag, record.Name, record.ShowRates,
			record.Buy, record.Sell, record.Updated,
		); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
