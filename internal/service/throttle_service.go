package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dmfreire/zapdispatch/internal/antiban"
	"github.com/dmfreire/zapdispatch/internal/config"
	"github.com/dmfreire/zapdispatch/internal/warmup"
)

type throttleService struct {
	cfg       config.AntiBanConfig
	policy    *antiban.Engine
	scheduler *warmup.Scheduler
	prober    ConnectionProber
	logger    *zap.Logger
}

func NewThrottleService(
	cfg config.AntiBanConfig,
	policy *antiban.Engine,
	scheduler *warmup.Scheduler,
	prober ConnectionProber,
	logger *zap.Logger,
) ThrottleService {
	return &throttleService{
		cfg:       cfg,
		policy:    policy,
		scheduler: scheduler,
		prober:    prober,
		logger:    logger,
	}
}

// Stats reports the instance's live counters alongside the limits in
// effect and its provider connection state. While warmup is active its
// daily ceiling replaces the warmed-account limit.
func (s *throttleService) Stats(ctx context.Context, instance string) (*ThrottleStats, error) {
	warmupStatus, err := s.scheduler.Status(instance)
	if err != nil {
		return nil, fmt.Errorf("failed to get warmup status: %w", err)
	}

	daily := s.cfg.MaxPerDay
	if warmupStatus.IsWarmingUp {
		daily = warmupStatus.MaxMessagesPerDay
	}

	// Best effort: an unreachable provider must not hide the counters.
	state, err := s.prober.ConnectionState(ctx, instance)
	if err != nil {
		s.logger.Warn("Failed to query instance connection state",
			zap.String("instance", instance),
			zap.Error(err))
		state = "unknown"
	}

	return &ThrottleStats{
		Instance:        instance,
		ConnectionState: state,
		AntiBan:         s.policy.Stats(instance),
		Warmup:          warmupStatus,
		Limits: ThrottleLimits{
			Hourly: s.cfg.MaxPerHour,
			Daily:  daily,
		},
	}, nil
}

// Reset zeroes the instance's running message total. Day and hour
// buckets are left alone so the daily and hourly limits keep holding.
func (s *throttleService) Reset(instance string) {
	s.policy.ResetCounters(instance)
	s.logger.Info("Throttle counters reset", zap.String("instance", instance))
}
