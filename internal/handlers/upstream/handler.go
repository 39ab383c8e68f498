// Package upstream serves the employee store over HTTP in the shape of the upstream employee API the
// gateway talks to.
package upstream

import (
	"errors"

	"github.com/rqchallenge/employees/internal/models"
	"github.com/rqchallenge/employees/internal/services"
	"github.com/rqchallenge/employees/internal/store"
	"github.com/rqchallenge/employees/pkg/gofr"
	gofrHTTP "github.com/rqchallenge/employees/pkg/gofr/http"
)

const (
	// StoreSizeGauge is the metric holding the number of stored employees.
	StoreSizeGauge = "app_employee_store_size"

	deletedMessage = "successfully! deleted Record"
	statusSuccess  = "success"
)

type Handler struct {
	store *store.Store
}

//nolint:revive // handler should not be used without proper initialization of the required dependency
func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

// Register adds the store routes under prefix, e.g. /api/v1, and publishes the current store size.
func (h *Handler) Register(app *gofr.App, prefix string) {
	app.Metrics().NewGauge(StoreSizeGauge, "Number of employees held by the employee store.")
	app.Metrics().SetGauge(StoreSizeGauge, float64(h.store.Len()))

	app.GET(prefix+"/employees", h.List)
	app.GET(prefix+"/research/employees", h.Research)
	app.GET(prefix+"/employee/{id}", h.Get)
	app.POST(prefix+"/create", h.Create)
	app.DELETE(prefix+"/delete/{id}", h.Delete)
	app.GET(prefix+"/.well-known/alive", h.Alive)
}

// Alive answers the liveness probe that HTTP clients of the store use for health checks.
func (*Handler) Alive(*gofr.Context) (any, error) {
	return map[string]string{"status": "UP"}, nil
}

func (h *Handler) List(*gofr.Context) (any, error) {
	return h.store.List(), nil
}

func (h *Handler) Research(*gofr.Context) (any, error) {
	return models.ListResponse{Status: statusSuccess, Data: h.store.List()}, nil
}

func (h *Handler) Get(c *gofr.Context) (any, error) {
	id := c.PathParam("id")

	e, err := h.store.Get(id)
	if err != nil {
		return nil, toHTTPError(err, id)
	}

	return e, nil
}

func (h *Handler) Create(c *gofr.Context) (any, error) {
	var req models.CreateRequest

	if err := c.Bind(&req); err != nil {
		return nil, err
	}

	e, err := h.store.Create(req.Key, req.Employee)
	if err != nil {
		if errors.Is(err, store.ErrKeyMismatch) {
			return nil, services.ErrCreateFailed{Key: req.Key, ID: req.Employee.ID}
		}

		return nil, toHTTPError(err, req.Key)
	}

	c.Debugf("employee %s created in store", e.ID)
	h.publishSize(c)

	return e, nil
}

func (h *Handler) Delete(c *gofr.Context) (any, error) {
	id := c.PathParam("id")

	if err := h.store.Delete(id); err != nil {
		return nil, toHTTPError(err, id)
	}

	c.Debugf("employee %s deleted from store", id)
	h.publishSize(c)

	return deletedMessage, nil
}

func (h *Handler) publishSize(c *gofr.Context) {
	c.Metrics().SetGauge(StoreSizeGauge, float64(h.store.Len()))
}

func toHTTPError(err error, id string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return gofrHTTP.ErrorEntityNotFound{Name: "id", Value: id}
	case errors.Is(err, store.ErrDuplicateID):
		return gofrHTTP.ErrorEntityAlreadyExist{Name: "id", Value: id}
	default:
		return err
	}
}
