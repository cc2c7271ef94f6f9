package service

import (
	"log/slog"

	identitymetrics "minibank/internal/identity/metrics"
)

// serviceConfig holds optional dependencies for the registry service.
type serviceConfig struct {
	logger  *slog.Logger
	metrics *identitymetrics.Metrics
}

// Option configures a RegistryService.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *identitymetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}
