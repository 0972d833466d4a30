package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dmfreire/zapdispatch/internal/models"
)

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// ListPending returns contacts still owed a send: no dispatch row yet,
// or a dispatch left in pending/error. Ascending id keeps the iteration
// order stable across restarts.
func (r *contactRepository) ListPending(campaignID int64) ([]*models.Contact, error) {
	query := `
		SELECT c.id, c.campaign_id, c.name, c.phone, c.created_at
		FROM contacts c
		LEFT JOIN dispatches d ON c.id = d.contact_id AND d.campaign_id = c.campaign_id
		WHERE c.campaign_id = $1
		  AND (d.status IS NULL OR d.status = $2 OR d.status = $3)
		ORDER BY c.id ASC
	`

	var contacts []*models.Contact
	err := r.db.Select(&contacts, query, campaignID,
		models.DispatchStatusPending, models.DispatchStatusError)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending contacts: %w", err)
	}

	return contacts, nil
}

func (r *contactRepository) CountByCampaign(campaignID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM contacts WHERE campaign_id = $1`

	if err := r.db.Get(&count, query, campaignID); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	return count, nil
}

// BulkInsert loads imported contacts into a campaign.
func (r *contactRepository) BulkInsert(campaignID int64, contacts []*models.Contact) error {
	if len(contacts) == 0 {
		return nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `INSERT INTO contacts (campaign_id, name, phone) VALUES ($1, $2, $3)`
	for _, contact := range contacts {
		if _, err := tx.Exec(query, campaignID, contact.Name, contact.Phone); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert contact %q: %w", contact.Phone, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit contacts: %w", err)
	}

	return nil
}
