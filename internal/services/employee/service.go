// Package employee implements the employee gateway: it reads and changes employees through the
// upstream employee store and computes the salary aggregates on top of the fetched collection.
package employee

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/rqchallenge/employees/internal/models"
	"github.com/rqchallenge/employees/internal/services"
	"github.com/rqchallenge/employees/pkg/gofr"
	"github.com/rqchallenge/employees/pkg/gofr/config"
	gofrHTTP "github.com/rqchallenge/employees/pkg/gofr/http"
	"github.com/rqchallenge/employees/pkg/gofr/metrics"
	"github.com/rqchallenge/employees/pkg/gofr/service"
)

// FailureCounter counts failed calls to the employee store by operation.
const FailureCounter = "app_upstream_failures"

const (
	opList          = "list employees"
	opSearch        = "search employees"
	opGetByID       = "get employee"
	opHighestSalary = "get highest salary"
	opTopTenNames   = "get top earners"
	opCreate        = "create employee"
	opDelete        = "delete employee"
)

// Endpoints are the paths of the store operations, relative to the address of the store.
type Endpoints struct {
	List   string
	Get    string
	Create string
	Delete string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{List: "employees", Get: "employee", Create: "create", Delete: "delete"}
}

// EndpointsFromConfig reads GET_ALL_EMPLOYEES, GET_EMPLOYEE_BY_ID, CREATE_EMPLOYEE and DELETE_EMPLOYEE,
// falling back to the default paths.
func EndpointsFromConfig(cfg config.Config) Endpoints {
	d := DefaultEndpoints()

	return Endpoints{
		List:   cfg.GetOrDefault("GET_ALL_EMPLOYEES", d.List),
		Get:    cfg.GetOrDefault("GET_EMPLOYEE_BY_ID", d.Get),
		Create: cfg.GetOrDefault("CREATE_EMPLOYEE", d.Create),
		Delete: cfg.GetOrDefault("DELETE_EMPLOYEE", d.Delete),
	}
}

// RegisterMetrics defines the metrics recorded by the gateway.
func RegisterMetrics(m metrics.Manager) {
	m.NewCounter(FailureCounter, "Number of failed calls to the employee store.")
}

// Service talks to the store through the HTTP service registered on the container under serviceName.
type Service struct {
	serviceName string
	endpoints   Endpoints
}

// New is factory function for the gateway
//
//nolint:revive // gateway should not be used without proper initialization of the required dependency
func New(serviceName string, endpoints Endpoints) *Service {
	return &Service{serviceName: serviceName, endpoints: endpoints}
}

// List returns the employees in the order the store returns them.
func (s *Service) List(ctx *gofr.Context) ([]models.Employee, error) {
	defer ctx.Trace("employee-gateway list").End()

	return s.list(ctx, opList)
}

// Search returns the employees whose name contains name. The match is case-sensitive and an empty
// name matches every employee.
func (s *Service) Search(ctx *gofr.Context, name string) ([]models.Employee, error) {
	defer ctx.Trace("employee-gateway search").End()

	employees, err := s.list(ctx, opSearch)
	if err != nil {
		return nil, err
	}

	return FilterByName(employees, name), nil
}

func (s *Service) GetByID(ctx *gofr.Context, id string) (models.Employee, error) {
	defer ctx.Trace("employee-gateway get").End()

	svc, err := s.store(ctx, opGetByID)
	if err != nil {
		return models.Employee{}, err
	}

	resp, err := svc.Get(ctx, s.endpoints.Get+"/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Employee{}, s.fail(ctx, opGetByID, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.Employee{}, gofrHTTP.ErrorEntityNotFound{Name: "id", Value: id}
	}

	var e models.Employee

	if err := s.decode(ctx, opGetByID, resp, &e, http.StatusOK); err != nil {
		return models.Employee{}, err
	}

	return e, nil
}

func (s *Service) HighestSalary(ctx *gofr.Context) (int, error) {
	defer ctx.Trace("employee-gateway highest-salary").End()

	employees, err := s.list(ctx, opHighestSalary)
	if err != nil {
		return 0, err
	}

	highest, err := MaxSalary(employees)
	if err != nil {
		ctx.Errorf("%s: %v", opHighestSalary, err)

		return 0, err
	}

	return highest, nil
}

// TopTenNames returns the names of the ten best paid employees, best paid first. Employees with
// equal salaries keep the order of the store.
func (s *Service) TopTenNames(ctx *gofr.Context) ([]string, error) {
	defer ctx.Trace("employee-gateway top-earners").End()

	employees, err := s.list(ctx, opTopTenNames)
	if err != nil {
		return nil, err
	}

	names, err := TopEarners(employees, topEarnersLimit)
	if err != nil {
		ctx.Errorf("%s: %v", opTopTenNames, err)

		return nil, err
	}

	return names, nil
}

func (s *Service) Create(ctx *gofr.Context, req models.CreateRequest) (models.Employee, error) {
	defer ctx.Trace("employee-gateway create").End()

	body, err := json.Marshal(req)
	if err != nil {
		return models.Employee{}, s.fail(ctx, opCreate, errors.Wrap(err, "encoding request"))
	}

	svc, err := s.store(ctx, opCreate)
	if err != nil {
		return models.Employee{}, err
	}

	resp, err := svc.Post(ctx, s.endpoints.Create, nil, body)
	if err != nil {
		return models.Employee{}, s.fail(ctx, opCreate, err)
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusConflict:
		return models.Employee{}, services.ErrDuplicateID{ID: req.Key}
	case http.StatusUnprocessableEntity:
		return models.Employee{}, services.ErrCreateFailed{Key: req.Key, ID: req.Employee.ID}
	}

	var e models.Employee

	if err := s.decode(ctx, opCreate, resp, &e, http.StatusCreated, http.StatusOK); err != nil {
		return models.Employee{}, err
	}

	ctx.Infof("employee %s created", e.ID)

	return e, nil
}

// Delete removes the employee and returns the confirmation message of the store.
func (s *Service) Delete(ctx *gofr.Context, id string) (string, error) {
	defer ctx.Trace("employee-gateway delete").End()

	svc, err := s.store(ctx, opDelete)
	if err != nil {
		return "", err
	}

	resp, err := svc.Delete(ctx, s.endpoints.Delete+"/"+url.PathEscape(id), nil)
	if err != nil {
		return "", s.fail(ctx, opDelete, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", gofrHTTP.ErrorEntityNotFound{Name: "id", Value: id}
	}

	var msg string

	if err := s.decode(ctx, opDelete, resp, &msg, http.StatusOK); err != nil {
		return "", err
	}

	ctx.Infof("employee %s deleted", id)

	return msg, nil
}

func (s *Service) list(ctx *gofr.Context, op string) ([]models.Employee, error) {
	svc, err := s.store(ctx, op)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Get(ctx, s.endpoints.List, nil)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}

	defer resp.Body.Close()

	var employees []models.Employee

	if err := s.decode(ctx, op, resp, &employees, http.StatusOK); err != nil {
		return nil, err
	}

	if employees == nil {
		employees = []models.Employee{}
	}

	return employees, nil
}

// decode unmarshals the data member of the response envelope into data. Any status other than the
// accepted ones is a failure of the store.
func (s *Service) decode(ctx *gofr.Context, op string, resp *http.Response, data any, accepted ...int) error {
	ok := false

	for _, code := range accepted {
		if resp.StatusCode == code {
			ok = true

			break
		}
	}

	if !ok {
		return s.fail(ctx, op, errors.Errorf("unexpected status code %d", resp.StatusCode))
	}

	envelope := struct {
		Data any `json:"data"`
	}{Data: data}

	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return s.fail(ctx, op, errors.Wrap(err, "decoding response"))
	}

	return nil
}

// store returns the client of the employee store. A missing registration fails the operation.
func (s *Service) store(ctx *gofr.Context, op string) (service.HTTP, error) {
	svc := ctx.GetHTTPService(s.serviceName)
	if svc == nil {
		return nil, s.fail(ctx, op, errors.Errorf("service %q not registered", s.serviceName))
	}

	return svc, nil
}

func (s *Service) fail(ctx *gofr.Context, op string, err error) error {
	ctx.Errorf("%s: %v", op, err)
	ctx.Metrics().IncrementCounter(ctx, FailureCounter, "operation", op)

	return services.ErrUpstream{Operation: op, Cause: err}
}
