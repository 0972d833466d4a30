package service

import (
	"github.com/dmfreire/zapdispatch/internal/antiban"
	"github.com/dmfreire/zapdispatch/internal/warmup"
)

type HealthState string

const (
	HealthStateHealthy   HealthState = "healthy"
	HealthStateDegraded  HealthState = "degraded"
	HealthStateUnhealthy HealthState = "unhealthy"
)

type HealthStatus struct {
	Status          HealthState `json:"status"`
	DatabaseStatus  string      `json:"database_status"`
	RedisStatus     string      `json:"redis_status"`
	ActiveCampaigns int         `json:"active_campaigns"`
}

// ThrottleStats merges an instance's live counters with the limits in
// effect, including the warmup ceiling while warmup is active.
type ThrottleStats struct {
	Instance        string                `json:"instance"`
	ConnectionState string                `json:"connection_state"`
	AntiBan         antiban.InstanceStats `json:"anti_ban"`
	Warmup          *warmup.Status        `json:"warmup"`
	Limits          ThrottleLimits        `json:"limits"`
}

type ThrottleLimits struct {
	Hourly int `json:"hourly"`
	Daily  int `json:"daily"`
}
