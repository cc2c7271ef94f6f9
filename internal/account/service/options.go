package service

import (
	"log/slog"

	accountmetrics "minibank/internal/account/metrics"
)

// serviceConfig holds optional dependencies for the ledger service.
type serviceConfig struct {
	logger  *slog.Logger
	metrics *accountmetrics.Metrics
}

// Option configures a LedgerService.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *accountmetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}
