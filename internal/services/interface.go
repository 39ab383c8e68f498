package services

import (
	"github.com/rqchallenge/employees/internal/models"
	"github.com/rqchallenge/employees/pkg/gofr"
)

// Employee reads and changes employees held by the upstream employee store.
type Employee interface {
	List(ctx *gofr.Context) ([]models.Employee, error)
	Search(ctx *gofr.Context, name string) ([]models.Employee, error)
	GetByID(ctx *gofr.Context, id string) (models.Employee, error)
	HighestSalary(ctx *gofr.Context) (int, error)
	TopTenNames(ctx *gofr.Context) ([]string, error)
	Create(ctx *gofr.Context, req models.CreateRequest) (models.Employee, error)
	Delete(ctx *gofr.Context, id string) (string, error)
}
