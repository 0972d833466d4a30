package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dmfreire/zapdispatch/internal/models"
)

type campaignRepository struct {
	db *sqlx.DB
}

func NewCampaignRepository(db *sqlx.DB) CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// GetByID returns the campaign or nil when it does not exist.
func (r *campaignRepository) GetByID(id int64) (*models.Campaign, error) {
	query := `
		SELECT id, name, kind, message, media_url, media_filename, mimetype,
		       interactive_data, send_delay_ms, instance_name, status,
		       total_contacts, total_sent, total_errors,
		       started_at, finished_at, created_at, updated_at
		FROM campaigns
		WHERE id = $1
	`

	var campaign models.Campaign
	err := r.db.Get(&campaign, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return &campaign, nil
}

// List returns all campaigns, newest first.
func (r *campaignRepository) List() ([]*models.Campaign, error) {
	query := `
		SELECT id, name, kind, message, media_url, media_filename, mimetype,
		       interactive_data, send_delay_ms, instance_name, status,
		       total_contacts, total_sent, total_errors,
		       started_at, finished_at, created_at, updated_at
		FROM campaigns
		ORDER BY created_at DESC
	`

	var campaigns []*models.Campaign
	if err := r.db.Select(&campaigns, query); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	return campaigns, nil
}

// UpdateStatus sets the lifecycle status only.
func (r *campaignRepository) UpdateStatus(id int64, status models.CampaignStatus) error {
	query := `UPDATE campaigns SET status = $2, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.Exec(query, id, status); err != nil {
		return fmt.Errorf("failed to update campaign status: %w", err)
	}

	return nil
}

// MarkSending transitions the campaign into an active run.
func (r *campaignRepository) MarkSending(id int64, totalContacts int) error {
	query := `
		UPDATE campaigns
		SET status = $2, started_at = NOW(), total_contacts = $3, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, models.CampaignStatusSending, totalContacts); err != nil {
		return fmt.Errorf("failed to mark campaign sending: %w", err)
	}

	return nil
}

// MarkCompleted ends the run and records the finish time.
func (r *campaignRepository) MarkCompleted(id int64) error {
	query := `
		UPDATE campaigns
		SET status = $2, finished_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, models.CampaignStatusCompleted); err != nil {
		return fmt.Errorf("failed to mark campaign completed: %w", err)
	}

	return nil
}

func (r *campaignRepository) IncrementSent(id int64) error {
	query := `UPDATE campaigns SET total_sent = total_sent + 1, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to increment sent counter: %w", err)
	}

	return nil
}

func (r *campaignRepository) IncrementErrors(id int64) error {
	query := `UPDATE campaigns SET total_errors = total_errors + 1, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to increment error counter: %w", err)
	}

	return nil
}
