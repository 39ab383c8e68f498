package gofr

import (
	"context"
	"errors"
	"time"

	"github.com/rqchallenge/employees/pkg/gofr/config"
)

// ShutdownWithContext runs shutdownFunc and waits for it until ctx is done. When ctx ends first,
// forceCloseFunc, if any, is called and its error joined to the one of ctx.
func ShutdownWithContext(ctx context.Context, shutdownFunc func(ctx context.Context) error, forceCloseFunc func() error) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- shutdownFunc(ctx)
	}()

	select {
	case <-ctx.Done():
		err := ctx.Err()

		if forceCloseFunc != nil {
			err = errors.Join(err, forceCloseFunc())
		}

		return err
	case err := <-errCh:
		return err
	}
}

// shutdownTimeout reads SHUTDOWN_GRACE_PERIOD as a Go duration, 30s by default.
func (a *App) shutdownTimeout() time.Duration {
	return config.Duration(a.Config, a.container, "SHUTDOWN_GRACE_PERIOD", shutDownTimeout)
}
