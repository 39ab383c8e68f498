package service

import (
	"context"
	"maps"
	"net/http"
)

// DefaultHeaders sets Headers on every call. A header the call already carries is kept.
type DefaultHeaders struct {
	Headers map[string]string
}

func (d *DefaultHeaders) AddOption(svc HTTP) HTTP {
	return decorate(svc, func(next sendFunc) sendFunc {
		return func(ctx context.Context, c *call) (*http.Response, error) {
			withDefaults := *c
			withDefaults.headers = mergeHeaders(d.Headers, c.headers)

			return next(ctx, &withDefaults)
		}
	})
}

// mergeHeaders returns a new map holding defaults overridden by headers.
func mergeHeaders(defaults, headers map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(headers))

	maps.Copy(merged, defaults)
	maps.Copy(merged, headers)

	return merged
}
