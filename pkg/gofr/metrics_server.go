package gofr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rqchallenge/employees/pkg/gofr/container"
	"github.com/rqchallenge/employees/pkg/gofr/metrics"
)

type metricServer struct {
	port int
	srv  *http.Server
}

func newMetricServer(port int) *metricServer {
	return &metricServer{
		port: port,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (m *metricServer) Run(c *container.Container) {
	c.Infof("Starting metrics server on port: %d", m.port)

	m.srv.Handler = metrics.GetHandler(c.Metrics())

	if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		c.Errorf("error while listening to metrics server, err: %v", err)
	}
}

func (m *metricServer) Shutdown(ctx context.Context) error {
	return ShutdownWithContext(ctx, func(ctx context.Context) error {
		return m.srv.Shutdown(ctx)
	}, nil)
}
