// Package config provides configuration management for the application.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Gateway    GatewayConfig    `mapstructure:"gateway"`
	AntiBan    AntiBanConfig    `mapstructure:"antiban"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GatewayConfig configures the Evolution API client.
type GatewayConfig struct {
	BaseURL        string               `mapstructure:"base_url"`
	APIKey         string               `mapstructure:"api_key"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// AntiBanConfig holds pacing and limit knobs for the rate/policy engine.
type AntiBanConfig struct {
	MinDelayMs           int     `mapstructure:"min_delay_ms"`
	MaxDelayMs           int     `mapstructure:"max_delay_ms"`
	NewAccountMinDelayMs int     `mapstructure:"new_account_min_delay_ms"`
	NewAccountMaxDelayMs int     `mapstructure:"new_account_max_delay_ms"`
	JitterRatio          float64 `mapstructure:"jitter_ratio"`

	MaxPerHour          int `mapstructure:"max_per_hour"`
	MaxPerDay           int `mapstructure:"max_per_day"`
	MaxPerDayNewAccount int `mapstructure:"max_per_day_new_account"`

	PauseEvery          int `mapstructure:"pause_every"`
	PauseDurationMs     int `mapstructure:"pause_duration_ms"`
	LongPauseEvery      int `mapstructure:"long_pause_every"`
	LongPauseDurationMs int `mapstructure:"long_pause_duration_ms"`

	BusinessHoursStart int `mapstructure:"business_hours_start"`
	BusinessHoursEnd   int `mapstructure:"business_hours_end"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("gateway.timeout", 30)
	viper.SetDefault("gateway.circuit_breaker.max_requests", 3)
	viper.SetDefault("gateway.circuit_breaker.interval", 60)
	viper.SetDefault("gateway.circuit_breaker.timeout", 60)
	viper.SetDefault("gateway.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("gateway.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("antiban.min_delay_ms", 20000)
	viper.SetDefault("antiban.max_delay_ms", 60000)
	viper.SetDefault("antiban.new_account_min_delay_ms", 30000)
	viper.SetDefault("antiban.new_account_max_delay_ms", 90000)
	viper.SetDefault("antiban.jitter_ratio", 0.3)
	viper.SetDefault("antiban.max_per_hour", 50)
	viper.SetDefault("antiban.max_per_day", 500)
	viper.SetDefault("antiban.max_per_day_new_account", 20)
	viper.SetDefault("antiban.pause_every", 20)
	viper.SetDefault("antiban.pause_duration_ms", 300000)
	viper.SetDefault("antiban.long_pause_every", 100)
	viper.SetDefault("antiban.long_pause_duration_ms", 1800000)
	viper.SetDefault("antiban.business_hours_start", 8)
	viper.SetDefault("antiban.business_hours_end", 20)
	viper.SetDefault("middleware.rate_limit", 100)
	viper.SetDefault("middleware.rate_limit_burst", 1000)
	viper.SetDefault("middleware.enable_cors", true)
	viper.SetDefault("middleware.allowed_origins", []string{"*"})

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// DefaultAntiBan returns the stock anti-ban policy used when no config
// file is loaded (tests, standalone engine construction).
func DefaultAntiBan() AntiBanConfig {
	return AntiBanConfig{
		MinDelayMs:           20000,
		MaxDelayMs:           60000,
		NewAccountMinDelayMs: 30000,
		NewAccountMaxDelayMs: 90000,
		JitterRatio:          0.3,
		MaxPerHour:           50,
		MaxPerDay:            500,
		MaxPerDayNewAccount:  20,
		PauseEvery:           20,
		PauseDurationMs:      300000,
		LongPauseEvery:       100,
		LongPauseDurationMs:  1800000,
		BusinessHoursStart:   8,
		BusinessHoursEnd:     20,
	}
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
