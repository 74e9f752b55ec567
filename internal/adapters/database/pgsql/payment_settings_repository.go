package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickfunds/loanflow_backend/internal/core/ports"
)

// PgxPaymentSettingsRepository reads the administrator-authored payment
// configuration snapshot.
type PgxPaymentSettingsRepository struct {
	db *pgxpool.Pool
}

// NewPaymentSettingsRepository creates a PgxPaymentSettingsRepository.
func NewPaymentSettingsRepository(db *pgxpool.Pool) ports.PaymentSettingsRepository {
	return &PgxPaymentSettingsRepository{db: db}
}

var _ ports.PaymentSettingsRepository = (*PgxPaymentSettingsRepository)(nil)

// GetPaymentSettings returns the full key/value snapshot. A missing table
// row simply leaves its key absent from the map.
func (r *PgxPaymentSettingsRepository) GetPaymentSettings(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.Query(ctx, "SELECT setting_key, setting_value FROM payment_settings")
	if err != nil {
		return nil, fmt.Errorf("failed to query payment settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan payment setting: %w", err)
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payment settings: %w", err)
	}
	return settings, nil
}
