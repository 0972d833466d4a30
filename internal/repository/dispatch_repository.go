package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dmfreire/zapdispatch/internal/models"
)

type dispatchRepository struct {
	db *sqlx.DB
}

func NewDispatchRepository(db *sqlx.DB) DispatchRepository {
	return &dispatchRepository{
		db: db,
	}
}

const dispatchColumns = `
	id, campaign_id, contact_id, phone, status, attempts,
	message_id, api_response, error_message, sent_at, created_at, updated_at
`

// CreateOrFetch inserts the row for (campaign, contact) unless it already
// exists, then returns whichever row won. The unique constraint on the
// pair makes this safe under concurrent restarts.
func (r *dispatchRepository) CreateOrFetch(campaignID, contactID int64, phone string) (*models.Dispatch, error) {
	insert := `
		INSERT INTO dispatches (campaign_id, contact_id, phone, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (campaign_id, contact_id) DO NOTHING
		RETURNING ` + dispatchColumns

	var dispatch models.Dispatch
	err := r.db.Get(&dispatch, insert, campaignID, contactID, phone, models.DispatchStatusPending)
	if err == nil {
		return &dispatch, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to insert dispatch: %w", err)
	}

	// Conflict: another run already created the row.
	fetch := `
		SELECT ` + dispatchColumns + `
		FROM dispatches
		WHERE campaign_id = $1 AND contact_id = $2
	`
	if err := r.db.Get(&dispatch, fetch, campaignID, contactID); err != nil {
		return nil, fmt.Errorf("failed to fetch existing dispatch: %w", err)
	}

	return &dispatch, nil
}

// MarkSent records a successful delivery with the provider message id
// and the raw gateway response.
func (r *dispatchRepository) MarkSent(id int64, messageID string, apiResponse json.RawMessage) error {
	query := `
		UPDATE dispatches
		SET status = $2, message_id = $3, api_response = $4,
		    sent_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`

	var msgID sql.NullString
	if messageID != "" {
		msgID = sql.NullString{String: messageID, Valid: true}
	}

	if _, err := r.db.Exec(query, id, models.DispatchStatusSent, msgID, nullableJSON(apiResponse)); err != nil {
		return fmt.Errorf("failed to mark dispatch sent: %w", err)
	}

	return nil
}

// MarkError records a failed delivery and bumps the attempt counter.
func (r *dispatchRepository) MarkError(id int64, errorMessage string, apiResponse json.RawMessage) error {
	query := `
		UPDATE dispatches
		SET status = $2, error_message = $3, api_response = $4,
		    attempts = attempts + 1, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, models.DispatchStatusError, errorMessage, nullableJSON(apiResponse)); err != nil {
		return fmt.Errorf("failed to mark dispatch error: %w", err)
	}

	return nil
}

func (r *dispatchRepository) ListByCampaign(campaignID int64) ([]*models.Dispatch, error) {
	query := `
		SELECT ` + dispatchColumns + `
		FROM dispatches
		WHERE campaign_id = $1
		ORDER BY id ASC
	`

	var dispatches []*models.Dispatch
	if err := r.db.Select(&dispatches, query, campaignID); err != nil {
		return nil, fmt.Errorf("failed to list dispatches: %w", err)
	}

	return dispatches, nil
}

func nullableJSON(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
