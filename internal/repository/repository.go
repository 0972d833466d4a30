// Package repository provides sqlx-backed persistence for campaigns,
// contacts, dispatches and warmup records.
package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db       *sqlx.DB
	campaign CampaignRepository
	contact  ContactRepository
	dispatch DispatchRepository
	warmup   WarmupRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:       db,
		campaign: NewCampaignRepository(db),
		contact:  NewContactRepository(db),
		dispatch: NewDispatchRepository(db),
		warmup:   NewWarmupRepository(db),
	}
}

func (r *repositoryImpl) Campaign() CampaignRepository {
	return r.campaign
}

func (r *repositoryImpl) Contact() ContactRepository {
	return r.contact
}

func (r *repositoryImpl) Dispatch() DispatchRepository {
	return r.dispatch
}

func (r *repositoryImpl) Warmup() WarmupRepository {
	return r.warmup
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
