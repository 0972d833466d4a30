package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"encoding/json"
	"time"

	"github.com/dmfreire/zapdispatch/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	Campaign() CampaignRepository
	Contact() ContactRepository
	Dispatch() DispatchRepository
	Warmup() WarmupRepository
}

// CampaignRepository covers the campaign reads and lifecycle writes the
// dispatch engine needs.
type CampaignRepository interface {
	GetByID(id int64) (*models.Campaign, error)
	List() ([]*models.Campaign, error)
	UpdateStatus(id int64, status models.CampaignStatus) error
	MarkSending(id int64, totalContacts int) error
	MarkCompleted(id int64) error
	IncrementSent(id int64) error
	IncrementErrors(id int64) error
}

// ContactRepository reads campaign contact lists.
type ContactRepository interface {
	// ListPending returns the campaign's contacts that have no dispatch
	// row yet, or whose dispatch is still pending or errored, in
	// ascending contact id order.
	ListPending(campaignID int64) ([]*models.Contact, error)
	CountByCampaign(campaignID int64) (int64, error)
	BulkInsert(campaignID int64, contacts []*models.Contact) error
}

// DispatchRepository owns the per-(campaign, contact) delivery records.
type DispatchRepository interface {
	// CreateOrFetch inserts the dispatch row for the pair if absent and
	// returns the existing row otherwise. Backed by a unique constraint
	// so concurrent restarts can never produce duplicates.
	CreateOrFetch(campaignID, contactID int64, phone string) (*models.Dispatch, error)
	MarkSent(id int64, messageID string, apiResponse json.RawMessage) error
	MarkError(id int64, errorMessage string, apiResponse json.RawMessage) error
	ListByCampaign(campaignID int64) ([]*models.Dispatch, error)
}

// WarmupRepository persists warmup lifecycle records.
type WarmupRepository interface {
	// GetActive returns the instance's active record, or nil when none.
	GetActive(instance string) (*models.WarmupRecord, error)
	Create(instance string, startDate time.Time) (*models.WarmupRecord, error)
	UpdateStatus(instance string, status models.WarmupStatus) error
}
