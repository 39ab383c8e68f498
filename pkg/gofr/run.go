package gofr

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Run starts the metrics server and, when routes are registered, the HTTP server. It blocks until both
// have stopped. SIGINT and SIGTERM trigger a graceful shutdown bounded by SHUTDOWN_GRACE_PERIOD.
func (a *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, done := context.WithTimeout(context.WithoutCancel(ctx), a.shutdownTimeout())
		defer done()

		if err := a.Shutdown(shutdownCtx); err != nil {
			a.Logger().Errorf("error while shutting down: %v", err)
		}
	}()

	wg := sync.WaitGroup{}

	// running metrics server before HTTP so that the first requests are already observed
	wg.Add(1)

	go func(m *metricServer) {
		defer wg.Done()
		m.Run(a.container)
	}(a.metricServer)

	if a.httpRegistered {
		wg.Add(1)
		a.httpServerSetup()

		go func(s *httpServer) {
			defer wg.Done()
			s.Run(a.container)
		}(a.httpServer)
	}

	wg.Wait()
}
