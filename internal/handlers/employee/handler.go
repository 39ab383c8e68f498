// Package employee exposes the employee gateway over HTTP under /employees.
package employee

import (
	"errors"
	"strings"

	"github.com/rqchallenge/employees/internal/models"
	"github.com/rqchallenge/employees/internal/services"
	"github.com/rqchallenge/employees/pkg/gofr"
	gofrHTTP "github.com/rqchallenge/employees/pkg/gofr/http"
)

type handler struct {
	service services.Employee
}

// New is factory function for handler layer
//
//nolint:revive // handler should not be used without proper initialization of the required dependency
func New(service services.Employee) handler {
	return handler{service: service}
}

// Register adds the routes. Fixed paths go before /employees/{id} so that they are not read as ids.
func (h handler) Register(app *gofr.App) {
	app.GET("/employees", h.List)
	app.GET("/employees/search/{name}", h.Search)
	app.GET("/employees/highestSalary", h.HighestSalary)
	app.GET("/employees/topTenHighestEarningEmployeeNames", h.TopTenNames)
	app.GET("/employees/{id}", h.GetByID)
	app.POST("/employees", h.Create)
	app.DELETE("/employees/{id}", h.Delete)
}

func (h handler) List(ctx *gofr.Context) (any, error) {
	employees, err := h.service.List(ctx)
	if err != nil || len(employees) == 0 {
		return nil, notFound(ctx, err, "No employee Information found")
	}

	return employees, nil
}

func (h handler) Search(ctx *gofr.Context) (any, error) {
	name := ctx.PathParam("name")

	employees, err := h.service.Search(ctx, name)
	if err != nil || len(employees) == 0 {
		return nil, notFound(ctx, err, "No employee found with given name: "+name)
	}

	return employees, nil
}

func (h handler) GetByID(ctx *gofr.Context) (any, error) {
	id := ctx.PathParam("id")
	if strings.TrimSpace(id) == "" {
		return nil, gofrHTTP.ErrorMissingParam{Name: "id"}
	}

	e, err := h.service.GetByID(ctx, id)
	if err != nil {
		return nil, readError(ctx, err, id)
	}

	return e, nil
}

func (h handler) HighestSalary(ctx *gofr.Context) (any, error) {
	salary, err := h.service.HighestSalary(ctx)
	if err != nil {
		return nil, notFound(ctx, err, "No employee information available")
	}

	return salary, nil
}

func (h handler) TopTenNames(ctx *gofr.Context) (any, error) {
	names, err := h.service.TopTenNames(ctx)
	if err != nil || len(names) == 0 {
		return nil, notFound(ctx, err, "No employee information available")
	}

	return names, nil
}

func (h handler) Create(ctx *gofr.Context) (any, error) {
	var req models.CreateRequest

	if err := ctx.Bind(&req); err != nil {
		return nil, err
	}

	e, err := h.service.Create(ctx, req)
	if err != nil {
		return nil, createError(err)
	}

	return e, nil
}

func (h handler) Delete(ctx *gofr.Context) (any, error) {
	id := ctx.PathParam("id")
	if strings.TrimSpace(id) == "" {
		return nil, gofrHTTP.ErrorMissingParam{Name: "id"}
	}

	msg, err := h.service.Delete(ctx, id)
	if err != nil {
		return nil, readError(ctx, err, id)
	}

	return msg, nil
}

// notFound collapses empty results and every gateway failure of a read into a 404 carrying reason.
func notFound(ctx *gofr.Context, err error, reason string) error {
	if err != nil {
		ctx.Debugf("%s: %v", reason, err)
	}

	return errorNotFound{reason: reason}
}

// readError keeps a not found answer of the store and turns any other failure into one for id.
func readError(ctx *gofr.Context, err error, id string) error {
	var nf gofrHTTP.ErrorEntityNotFound

	if errors.As(err, &nf) {
		return nf
	}

	ctx.Debugf("employee %s answered as not found: %v", id, err)

	return gofrHTTP.ErrorEntityNotFound{Name: "id", Value: id}
}

// createError keeps the outcomes a client can act on and hides everything else behind a 500.
func createError(err error) error {
	var (
		duplicate services.ErrDuplicateID
		failed    services.ErrCreateFailed
	)

	switch {
	case errors.As(err, &duplicate), errors.As(err, &failed):
		return err
	default:
		return errorCreate{cause: err}
	}
}
