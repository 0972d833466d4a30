package service

import (
	"context"

	"github.com/dmfreire/zapdispatch/internal/models"
	"github.com/dmfreire/zapdispatch/internal/warmup"
)

type CampaignService interface {
	Start(campaignID int64) error
	Pause(campaignID int64) error
	Resume(campaignID int64) error
	List() ([]*models.Campaign, error)
	Dispatches(campaignID int64) ([]*models.Dispatch, error)
	ImportContacts(campaignID int64, contacts []*models.Contact) (int64, error)
}

type WarmupService interface {
	Start(instance string) (*models.WarmupRecord, error)
	Stop(instance string) error
	Status(instance string) (*warmup.Status, error)
	Schedule() []warmup.ScheduleEntry
}

type ThrottleService interface {
	Stats(ctx context.Context, instance string) (*ThrottleStats, error)
	Reset(instance string)
}

type HealthService interface {
	GetHealth() *HealthStatus
}

// ConnectionProber reports an instance's provider connection state.
type ConnectionProber interface {
	ConnectionState(ctx context.Context, instance string) (string, error)
}
