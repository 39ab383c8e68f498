package container

import (
	"github.com/rqchallenge/employees/pkg/gofr/service"
)

// AddHTTPService registers an HTTP client for the service at address under name. The client reports
// to the container's logger and metrics. Registering a name twice keeps the first client.
func (c *Container) AddHTTPService(name, address string, options ...service.Options) service.HTTP {
	if c.Services == nil {
		c.Services = make(map[string]service.HTTP)
	}

	if svc, ok := c.Services[name]; ok {
		c.Debugf("Service already registered Name: %v", name)

		return svc
	}

	svc := service.NewHTTPService(name, address, c.Logger, c.metricsManager, options...)
	c.Services[name] = svc

	return svc
}
