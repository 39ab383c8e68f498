package main

import (
	"time"

	"github.com/rqchallenge/employees/pkg/gofr/config"
	"github.com/rqchallenge/employees/pkg/gofr/service"
)

const (
	upstreamServiceName = "employee-store"

	defaultUpstreamTimeout = 5 * time.Second
	defaultCBInterval      = 10 * time.Second
)

// upstreamURL defaults to the mock upstream served by this process.
func upstreamURL(cfg config.Config) string {
	return cfg.GetOrDefault("UPSTREAM_URL", "http://localhost:"+cfg.GetOrDefault("HTTP_PORT", "8000")+upstreamPrefix)
}

// upstreamOptions builds the client options of the employee store from UPSTREAM_TIMEOUT, UPSTREAM_RETRIES,
// UPSTREAM_CB_THRESHOLD and UPSTREAM_CB_INTERVAL. Invalid values fall back to the defaults.
func upstreamOptions(cfg config.Config, log config.Warner) []service.Options {
	options := []service.Options{
		&service.DefaultHeaders{Headers: map[string]string{"Accept": "application/json"}},
		&service.WithTimeout{Timeout: config.Duration(cfg, log, "UPSTREAM_TIMEOUT", defaultUpstreamTimeout)},
	}

	if retries := config.Int(cfg, log, "UPSTREAM_RETRIES", 0, 0); retries > 0 {
		options = append(options, &service.RetryConfig{MaxRetries: retries})
	}

	if threshold := config.Int(cfg, log, "UPSTREAM_CB_THRESHOLD", 0, 0); threshold > 0 {
		options = append(options, &service.CircuitBreakerConfig{
			Threshold: threshold,
			Interval:  config.Duration(cfg, log, "UPSTREAM_CB_INTERVAL", defaultCBInterval),
		})
	}

	return options
}
