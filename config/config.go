package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

var cfg *Config

//Config represents service configuration for dp-frontend-dataset-index-controller
type Config struct {
	BindAddr                   string        `envconfig:"BIND_ADDR"`
	DatasetIndexAPIURL         string        `envconfig:"DATASET_INDEX_API_URL"`
	GracefulShutdownTimeout    time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
}

// Get returns the default config with any modifications through environment
// variables
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		BindAddr:                   ":24600",
		DatasetIndexAPIURL:         "http://localhost:23200/v1",
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
	}

	return cfg, envconfig.Process("", cfg)
}
