package main

import (
	handler "github.com/rqchallenge/employees/internal/handlers/employee"
	"github.com/rqchallenge/employees/internal/handlers/upstream"
	gateway "github.com/rqchallenge/employees/internal/services/employee"
	"github.com/rqchallenge/employees/internal/store"
	"github.com/rqchallenge/employees/pkg/gofr"
	"github.com/rqchallenge/employees/pkg/gofr/config"
)

const upstreamPrefix = "/api/v1"

func main() {
	app := gofr.New()

	if mockUpstreamEnabled(app) {
		s := store.New()
		s.Seed(store.DefaultSeed()...)

		upstream.New(s).Register(app, upstreamPrefix)
	}

	app.AddHTTPService(upstreamServiceName, upstreamURL(app.Config), upstreamOptions(app.Config, app.Logger())...)

	gateway.RegisterMetrics(app.Metrics())

	handler.New(gateway.New(upstreamServiceName, gateway.EndpointsFromConfig(app.Config))).Register(app)

	app.Run()
}

func mockUpstreamEnabled(app *gofr.App) bool {
	return config.Bool(app.Config, app.Logger(), "MOCK_UPSTREAM_ENABLED", true)
}
