// Package service provides business logic implementation for the application.
package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/dmfreire/zapdispatch/internal/antiban"
	"github.com/dmfreire/zapdispatch/internal/config"
	"github.com/dmfreire/zapdispatch/internal/dispatch"
	"github.com/dmfreire/zapdispatch/internal/gateway"
	"github.com/dmfreire/zapdispatch/internal/repository"
	"github.com/dmfreire/zapdispatch/internal/warmup"
)

type Service struct {
	Campaign CampaignService
	Warmup   WarmupService
	Throttle ThrottleService
	Health   HealthService

	// Engine is exposed so main can drain loops on shutdown.
	Engine *dispatch.Engine
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	policy := antiban.NewEngine(cfg.AntiBan)
	warmupScheduler := warmup.NewScheduler(repo.Warmup(), logger)
	gatewayClient := gateway.NewClient(&cfg.Gateway, logger)

	engine := dispatch.NewEngine(
		repo, gatewayClient, policy, warmupScheduler,
		dispatch.NewClock(), redisClient, logger)

	return &Service{
		Campaign: NewCampaignService(engine, repo),
		Warmup:   NewWarmupService(warmupScheduler),
		Throttle: NewThrottleService(cfg.AntiBan, policy, warmupScheduler, gatewayClient, logger),
		Health:   NewHealthService(repo, redisClient, engine),
		Engine:   engine,
	}
}
