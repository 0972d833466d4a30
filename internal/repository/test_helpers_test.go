package repository_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/dmfreire/zapdispatch/internal/models"
)

func insertTestCampaign(t *testing.T, db *sqlx.DB, name, instance string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO campaigns (name, kind, message, instance_name)
		VALUES ($1, 'text', 'Hi {{name}}', $2)
		RETURNING id
	`, name, instance).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTestContact(t *testing.T, db *sqlx.DB, campaignID int64, name, phone string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO contacts (campaign_id, name, phone)
		VALUES ($1, $2, $3)
		RETURNING id
	`, campaignID, name, phone).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTestDispatch(t *testing.T, db *sqlx.DB, campaignID, contactID int64, phone string, status models.DispatchStatus) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO dispatches (campaign_id, contact_id, phone, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, campaignID, contactID, phone, status).Scan(&id)
	require.NoError(t, err)

	return id
}

func campaignStatus(t *testing.T, db *sqlx.DB, id int64) models.CampaignStatus {
	t.Helper()

	var status models.CampaignStatus
	require.NoError(t, db.Get(&status, `SELECT status FROM campaigns WHERE id = $1`, id))
	return status
}
