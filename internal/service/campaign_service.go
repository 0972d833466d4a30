package service

import (
	"fmt"

	"github.com/dmfreire/zapdispatch/internal/dispatch"
	"github.com/dmfreire/zapdispatch/internal/models"
	"github.com/dmfreire/zapdispatch/internal/repository"
)

type campaignService struct {
	engine *dispatch.Engine
	repo   repository.Repository
}

func NewCampaignService(engine *dispatch.Engine, repo repository.Repository) CampaignService {
	return &campaignService{
		engine: engine,
		repo:   repo,
	}
}

func (s *campaignService) Start(campaignID int64) error {
	return s.engine.Start(campaignID)
}

func (s *campaignService) Pause(campaignID int64) error {
	return s.engine.Pause(campaignID)
}

func (s *campaignService) Resume(campaignID int64) error {
	return s.engine.Resume(campaignID)
}

func (s *campaignService) List() ([]*models.Campaign, error) {
	return s.repo.Campaign().List()
}

// Dispatches returns the campaign's per-contact delivery records.
func (s *campaignService) Dispatches(campaignID int64) ([]*models.Dispatch, error) {
	campaign, err := s.repo.Campaign().GetByID(campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}
	if campaign == nil {
		return nil, dispatch.ErrCampaignNotFound
	}

	return s.repo.Dispatch().ListByCampaign(campaignID)
}

// ImportContacts appends contacts to the campaign and returns its total
// contact count afterwards.
func (s *campaignService) ImportContacts(campaignID int64, contacts []*models.Contact) (int64, error) {
	campaign, err := s.repo.Campaign().GetByID(campaignID)
	if err != nil {
		return 0, fmt.Errorf("failed to load campaign: %w", err)
	}
	if campaign == nil {
		return 0, dispatch.ErrCampaignNotFound
	}

	if err := s.repo.Contact().BulkInsert(campaignID, contacts); err != nil {
		return 0, fmt.Errorf("failed to import contacts: %w", err)
	}

	return s.repo.Contact().CountByCampaign(campaignID)
}
