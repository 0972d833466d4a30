package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dmfreire/zapdispatch/internal/models"
)

type warmupRepository struct {
	db *sqlx.DB
}

func NewWarmupRepository(db *sqlx.DB) WarmupRepository {
	return &warmupRepository{
		db: db,
	}
}

// GetActive returns the single active record for the instance, or nil.
func (r *warmupRepository) GetActive(instance string) (*models.WarmupRecord, error) {
	query := `
		SELECT id, instance_name, start_date, status, created_at, updated_at
		FROM number_warmup
		WHERE instance_name = $1 AND status = $2
		ORDER BY id DESC
		LIMIT 1
	`

	var record models.WarmupRecord
	err := r.db.Get(&record, query, instance, models.WarmupStatusActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active warmup: %w", err)
	}

	return &record, nil
}

func (r *warmupRepository) Create(instance string, startDate time.Time) (*models.WarmupRecord, error) {
	query := `
		INSERT INTO number_warmup (instance_name, start_date, status)
		VALUES ($1, $2, $3)
		RETURNING id, instance_name, start_date, status, created_at, updated_at
	`

	var record models.WarmupRecord
	err := r.db.Get(&record, query, instance, startDate, models.WarmupStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to create warmup record: %w", err)
	}

	return &record, nil
}

// UpdateStatus transitions the instance's active record. A no-op when
// nothing is active.
func (r *warmupRepository) UpdateStatus(instance string, status models.WarmupStatus) error {
	query := `
		UPDATE number_warmup
		SET status = $2, updated_at = NOW()
		WHERE instance_name = $1 AND status = $3
	`

	if _, err := r.db.Exec(query, instance, status, models.WarmupStatusActive); err != nil {
		return fmt.Errorf("failed to update warmup status: %w", err)
	}

	return nil
}
