package container

import (
	"context"
	"sync"
)

const (
	statusUp       = "UP"
	statusDegraded = "DEGRADED"
)

// Health reports the status of every registered HTTP service. The overall status is DEGRADED when
// any service is not UP.
func (c *Container) Health(ctx context.Context) map[string]any {
	var (
		mu sync.Mutex
		wg sync.WaitGroup

		services = make(map[string]any, len(c.Services))
		status   = statusUp
	)

	for name, svc := range c.Services {
		wg.Add(1)

		go func(name string) {
			defer wg.Done()

			h := svc.HealthCheck(ctx)

			mu.Lock()
			defer mu.Unlock()

			services[name] = h

			if h.Status != statusUp {
				status = statusDegraded
			}
		}(name)
	}

	wg.Wait()

	healthMap := map[string]any{
		"status":  status,
		"name":    c.GetAppName(),
		"version": c.GetAppVersion(),
	}

	if len(services) > 0 {
		healthMap["services"] = services
	}

	return healthMap
}
