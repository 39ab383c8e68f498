package service

import (
	"context"
	"net/http"
)

// RetryConfig retries GET calls that fail. MaxRetries counts the attempts after the first one.
// POST and DELETE change the store and are sent once.
type RetryConfig struct {
	MaxRetries int
}

func (r *RetryConfig) AddOption(svc HTTP) HTTP {
	maxRetries := r.MaxRetries

	return decorate(svc, func(next sendFunc) sendFunc {
		return func(ctx context.Context, c *call) (*http.Response, error) {
			resp, err := next(ctx, c)
			if c.method != http.MethodGet {
				return resp, err
			}

			for i := 0; i < maxRetries && failed(resp, err) && ctx.Err() == nil; i++ {
				if resp != nil {
					resp.Body.Close()
				}

				resp, err = next(ctx, c)
			}

			return resp, err
		}
	})
}

// failed reports a transport error or a 5xx answer.
func failed(resp *http.Response, err error) bool {
	return err != nil || resp.StatusCode >= http.StatusInternalServerError
}
