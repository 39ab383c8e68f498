package service

import (
	"context"
	"net/http"
)

const (
	serviceUp   = "UP"
	serviceDown = "DOWN"

	AlivePath = ".well-known/alive"
)

type Health struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details"`
}

// HealthCheck is UP when the alive endpoint answers 200. It goes around the options of the client.
func (h *httpService) HealthCheck(ctx context.Context) *Health {
	health := &Health{Status: serviceDown, Details: map[string]any{"host": h.url}}

	resp, err := h.send(ctx, &call{method: http.MethodGet, path: AlivePath})
	if err != nil {
		health.Details["error"] = err.Error()

		return health
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		health.Details["error"] = "service down"

		return health
	}

	health.Status = serviceUp

	return health
}
