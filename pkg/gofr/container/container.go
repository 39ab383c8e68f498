// Package container holds what every handler shares: the logger, the metrics manager and the
// clients of the registered HTTP services.
package container

import (
	"fmt"

	"github.com/rqchallenge/employees/pkg/gofr/config"
	"github.com/rqchallenge/employees/pkg/gofr/logging"
	"github.com/rqchallenge/employees/pkg/gofr/metrics"
	"github.com/rqchallenge/employees/pkg/gofr/service"
)

const responseTimeDesc = "Response time of %s in seconds."

// latencyBuckets span 1ms to 30s, in seconds.
var latencyBuckets = []float64{.001, .003, .005, .01, .02, .03, .05, .1, .2, .3, .5, .75, 1, 2, 3, 5, 10, 30}

type Container struct {
	logging.Logger

	appName    string
	appVersion string

	Services       map[string]service.HTTP
	metricsManager metrics.Manager
}

// NewContainer reads APP_NAME, APP_VERSION and LOG_LEVEL from conf. A nil conf gives an empty
// container without logger or metrics.
func NewContainer(conf config.Config) *Container {
	if conf == nil {
		return &Container{}
	}

	c := &Container{
		appName:    conf.GetOrDefault("APP_NAME", "employees"),
		appVersion: conf.GetOrDefault("APP_VERSION", "dev"),
		Services:   make(map[string]service.HTTP),
	}

	c.setup(conf)

	return c
}

// setup keeps a logger that is already set.
func (c *Container) setup(conf config.Config) {
	if c.Logger == nil {
		c.Logger = logging.NewLogger(logging.GetLevelFromString(conf.Get("LOG_LEVEL")))
	}

	c.Debug("Container is being created")

	c.metricsManager = metrics.NewMetricsManager(c.Logger)

	m := c.metricsManager
	m.NewGauge("app_info", "Info for app_name and app_version.")
	m.NewHistogram("app_http_response", fmt.Sprintf(responseTimeDesc, "HTTP requests"), latencyBuckets...)
	m.NewHistogram("app_http_service_response", fmt.Sprintf(responseTimeDesc, "HTTP service requests"), latencyBuckets...)
	m.NewGauge("app_http_circuit_breaker_state", "Circuit breaker state per service, 0 closed and 1 open.")

	// one per running instance
	m.SetGauge("app_info", 1, "app_name", c.appName, "app_version", c.appVersion)
}

// GetHTTPService returns nil for a name no client was registered under.
func (c *Container) GetHTTPService(serviceName string) service.HTTP {
	return c.Services[serviceName]
}

func (c *Container) Metrics() metrics.Manager {
	return c.metricsManager
}

func (c *Container) GetAppName() string {
	return c.appName
}

func (c *Container) GetAppVersion() string {
	return c.appVersion
}
