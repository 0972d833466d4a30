package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/dmfreire/zapdispatch/internal/dispatch"
	"github.com/dmfreire/zapdispatch/internal/repository"
)

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	engine      *dispatch.Engine
}

func NewHealthService(repo repository.Repository, redisClient *redis.Client, engine *dispatch.Engine) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		engine:      engine,
	}
}

// GetHealth checks the store and cache. A dead database is unhealthy; a
// dead Redis only degrades, since the message-id cache is best effort.
func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status:          HealthStateHealthy,
		DatabaseStatus:  "connected",
		RedisStatus:     "connected",
		ActiveCampaigns: s.engine.ActiveCampaigns(),
	}

	if err := s.repo.Ping(); err != nil {
		status.DatabaseStatus = "disconnected"
		status.Status = HealthStateUnhealthy
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		status.RedisStatus = "disconnected"
		if status.Status == HealthStateHealthy {
			status.Status = HealthStateDegraded
		}
	}

	return status
}
