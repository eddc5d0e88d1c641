package app

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	FeedbackBackendMemory = "memory"
	FeedbackBackendRedis  = "redis"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	FeedbackBackend string        `envconfig:"FEEDBACK_BACKEND" default:"memory"`
	FeedbackTTL     time.Duration `envconfig:"FEEDBACK_TTL" default:"5s"`
	FeedbackKey     string        `envconfig:"FEEDBACK_KEY" default:"dashboard:feedback"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`

	ProfileInitialPassword string `envconfig:"PROFILE_INITIAL_PASSWORD" default:"change-me-please"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.FeedbackBackend {
	case FeedbackBackendMemory, FeedbackBackendRedis:
	default:
		return fmt.Errorf("FEEDBACK_BACKEND must be %q or %q, got %q", FeedbackBackendMemory, FeedbackBackendRedis, c.FeedbackBackend)
	}
	if c.FeedbackTTL <= 0 {
		return fmt.Errorf("FEEDBACK_TTL must be positive, got %s", c.FeedbackTTL)
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", c.RateLimitPerMinute)
	}
	if len(c.ProfileInitialPassword) < 8 {
		return fmt.Errorf("PROFILE_INITIAL_PASSWORD must be at least 8 characters")
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
