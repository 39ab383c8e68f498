package gofr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rqchallenge/employees/pkg/gofr/container"
	gofrHTTP "github.com/rqchallenge/employees/pkg/gofr/http"
	"github.com/rqchallenge/employees/pkg/gofr/http/middleware"
)

type httpServer struct {
	router *gofrHTTP.Router
	port   int
	srv    *http.Server
}

func newHTTPServer(c *container.Container, port int, corsConfigs map[string]string) *httpServer {
	r := gofrHTTP.NewRouter()

	r.UseMiddleware(
		middleware.Tracer,
		middleware.Logging(c.Logger),
		middleware.CORS(corsConfigs),
		middleware.Metrics(c.Metrics()),
	)

	return &httpServer{
		router: r,
		port:   port,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *httpServer) Run(c *container.Container) {
	c.Infof("Starting server on port: %d", s.port)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		c.Errorf("error while listening to http server, err: %v", err)
	}
}

func (s *httpServer) Shutdown(ctx context.Context) error {
	return ShutdownWithContext(ctx, func(ctx context.Context) error {
		return s.srv.Shutdown(ctx)
	}, s.srv.Close)
}
