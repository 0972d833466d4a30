package warmup

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/dmfreire/zapdispatch/internal/models"
	"github.com/dmfreire/zapdispatch/internal/repository"
)

// Status describes where an instance stands in its warmup cycle.
type Status struct {
	IsWarmingUp       bool       `json:"is_warming_up"`
	IsComplete        bool       `json:"is_complete"`
	CurrentDay        int        `json:"current_day,omitempty"`
	MaxMessagesPerDay int        `json:"max_messages_per_day,omitempty"`
	Description       string     `json:"description,omitempty"`
	ProgressPercent   int        `json:"progress_percent,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
}

// Scheduler advises a daily send ceiling per instance. It only reads
// and writes warmup records; enforcing the ceiling against live send
// counters is the dispatch loop's job.
type Scheduler struct {
	repo   repository.WarmupRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewScheduler(repo repository.WarmupRepository, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Start opens a day-1 warmup cycle for the instance.
func (s *Scheduler) Start(instance string) (*models.WarmupRecord, error) {
	existing, err := s.repo.GetActive(instance)
	if err != nil {
		return nil, fmt.Errorf("failed to check active warmup: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyWarming
	}

	record, err := s.repo.Create(instance, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to create warmup record: %w", err)
	}

	s.logger.Info("Warmup started",
		zap.String("instance", instance),
		zap.Int("day_one_cap", schedule[0].MaxMessages))
	return record, nil
}

// Status reports the current warmup day and ceiling. Crossing day 28
// transitions the record to completed as a side effect.
func (s *Scheduler) Status(instance string) (*Status, error) {
	record, err := s.repo.GetActive(instance)
	if err != nil {
		return nil, fmt.Errorf("failed to load warmup record: %w", err)
	}
	if record == nil {
		return &Status{}, nil
	}

	day := s.currentDay(record.StartDate)
	if day > scheduleDays {
		if err := s.repo.UpdateStatus(instance, models.WarmupStatusCompleted); err != nil {
			return nil, fmt.Errorf("failed to complete warmup: %w", err)
		}
		s.logger.Info("Warmup completed", zap.String("instance", instance))
		return &Status{IsComplete: true}, nil
	}

	entry := entryForDay(day)
	start := record.StartDate
	return &Status{
		IsWarmingUp:       true,
		CurrentDay:        day,
		MaxMessagesPerDay: entry.MaxMessages,
		Description:       entry.Description,
		ProgressPercent:   int(math.Round(float64(day) / scheduleDays * 100)),
		StartDate:         &start,
	}, nil
}

// Stop pauses the active warmup cycle. Calling it with no active cycle
// is a no-op.
func (s *Scheduler) Stop(instance string) error {
	if err := s.repo.UpdateStatus(instance, models.WarmupStatusPaused); err != nil {
		return fmt.Errorf("failed to pause warmup: %w", err)
	}
	s.logger.Info("Warmup stopped", zap.String("instance", instance))
	return nil
}

// currentDay counts elapsed days since the start date, where any
// fraction of a day counts as a full day.
func (s *Scheduler) currentDay(start time.Time) int {
	hours := s.now().Sub(start).Hours()
	day := int(math.Ceil(hours / 24))
	if day < 1 {
		day = 1
	}
	return day
}
