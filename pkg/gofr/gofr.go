/*
Package gofr provides the application framework of the service: the App with its HTTP and metrics
servers, the request Context handed to handlers, and the wiring of configuration, logging, metrics and
tracing through the container.
*/
package gofr

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/rqchallenge/employees/pkg/gofr/config"
	"github.com/rqchallenge/employees/pkg/gofr/container"
	"github.com/rqchallenge/employees/pkg/gofr/http/middleware"
	"github.com/rqchallenge/employees/pkg/gofr/logging"
	"github.com/rqchallenge/employees/pkg/gofr/metrics"
	"github.com/rqchallenge/employees/pkg/gofr/service"
)

const (
	defaultHTTPPort   = 8000
	defaultMetricPort = 2121
	shutDownTimeout   = 30 * time.Second
	configFolder      = "./configs"
)

// App owns the servers of the service and the container its handlers run with.
type App struct {
	// Config holds the application settings. It is a field so Get and GET stay apart.
	Config config.Config

	httpServer   *httpServer
	metricServer *metricServer

	// handlers reach the container through Context
	container *container.Container

	tracerProvider *sdktrace.TracerProvider

	httpRegistered bool
	setupOnce      sync.Once
	shutdownOnce   sync.Once
	shutdownErr    error
}

// New builds an App configured from the env files in ./configs and the process environment.
func New() *App {
	return NewWithConfig(readConfig())
}

// NewWithConfig builds an App on cfg. Tests use it with a map backed config.
func NewWithConfig(cfg config.Config) *App {
	app := &App{Config: cfg}
	app.container = container.NewContainer(app.Config)

	app.initTracer()

	app.metricServer = newMetricServer(config.Int(app.Config, app.container, "METRICS_PORT", defaultMetricPort, 1))

	app.httpServer = newHTTPServer(app.container, config.Int(app.Config, app.container, "HTTP_PORT", defaultHTTPPort, 1),
		middleware.CORSConfigs(app.Config))

	return app
}

func readConfig() config.Config {
	var configLocation string
	if _, err := os.Stat(configFolder); err == nil {
		configLocation = configFolder
	}

	return config.NewEnvFile(configLocation, logging.NewLogger(logging.INFO))
}

// AddHTTPService registers an HTTP service in the container. Handlers look it up by serviceName
// through Context.GetHTTPService.
func (a *App) AddHTTPService(serviceName, serviceAddress string, options ...service.Options) {
	a.container.AddHTTPService(serviceName, serviceAddress, options...)
}

// GET, POST and DELETE route requests matching pattern to the handler. Patterns take gorilla/mux
// path variables such as {id}.
func (a *App) GET(pattern string, handler Handler) {
	a.add(http.MethodGet, pattern, handler)
}

func (a *App) POST(pattern string, handler Handler) {
	a.add(http.MethodPost, pattern, handler)
}

func (a *App) DELETE(pattern string, handler Handler) {
	a.add(http.MethodDelete, pattern, handler)
}

func (a *App) add(method, pattern string, h Handler) {
	a.httpRegistered = true

	a.httpServer.router.Add(method, pattern, handler{
		function:       h,
		container:      a.container,
		requestTimeout: a.requestTimeout(),
	})
}

// requestTimeout reads REQUEST_TIMEOUT in whole seconds. Zero, the default, disables the timeout.
func (a *App) requestTimeout() time.Duration {
	return time.Duration(config.Int(a.Config, a.container, "REQUEST_TIMEOUT", 0, 0)) * time.Second
}

func (a *App) Metrics() metrics.Manager {
	return a.container.Metrics()
}

func (a *App) Logger() logging.Logger {
	return a.container.Logger
}

// httpServerSetup registers the well-known routes and, last of all, the catch-all route answering
// unknown paths with 404.
func (a *App) httpServerSetup() {
	a.setupOnce.Do(func() {
		a.add(http.MethodGet, "/.well-known/health", healthHandler)
		a.add(http.MethodGet, "/.well-known/alive", liveHandler)

		a.httpServer.router.PathPrefix("/").Handler(handler{
			function:  catchAllHandler,
			container: a.container,
		})
	})
}

// Shutdown stops the HTTP and metrics servers and flushes pending spans. Calls after the first one
// return the result of the first.
func (a *App) Shutdown(ctx context.Context) error {
	a.shutdownOnce.Do(func() {
		var err error

		if a.httpServer != nil {
			err = errors.Join(err, a.httpServer.Shutdown(ctx))
		}

		if a.metricServer != nil {
			err = errors.Join(err, a.metricServer.Shutdown(ctx))
		}

		if a.tracerProvider != nil {
			err = errors.Join(err, a.tracerProvider.Shutdown(ctx))
		}

		if err == nil {
			a.container.Logger.Info("Application shutdown successful")
		}

		a.shutdownErr = err
	})

	return a.shutdownErr
}
