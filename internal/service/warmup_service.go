package service

import (
	"github.com/dmfreire/zapdispatch/internal/models"
	"github.com/dmfreire/zapdispatch/internal/warmup"
)

type warmupService struct {
	scheduler *warmup.Scheduler
}

func NewWarmupService(scheduler *warmup.Scheduler) WarmupService {
	return &warmupService{
		scheduler: scheduler,
	}
}

func (s *warmupService) Start(instance string) (*models.WarmupRecord, error) {
	return s.scheduler.Start(instance)
}

func (s *warmupService) Stop(instance string) error {
	return s.scheduler.Stop(instance)
}

func (s *warmupService) Status(instance string) (*warmup.Status, error) {
	return s.scheduler.Status(instance)
}

func (s *warmupService) Schedule() []warmup.ScheduleEntry {
	return warmup.Schedule()
}
