package employee

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rqchallenge/employees/internal/models"
	"github.com/rqchallenge/employees/internal/services"
)

const topEarnersLimit = 10

// FilterByName keeps the employees whose name contains s, in their input order.
func FilterByName(employees []models.Employee, s string) []models.Employee {
	out := make([]models.Employee, 0, len(employees))

	for _, e := range employees {
		if strings.Contains(e.Name, s) {
			out = append(out, e)
		}
	}

	return out
}

// MaxSalary returns the highest salary. The first salary that is not an integer fails the whole
// computation.
func MaxSalary(employees []models.Employee) (int, error) {
	if len(employees) == 0 {
		return 0, services.ErrNoEmployees{}
	}

	highest := 0

	for i, e := range employees {
		salary, err := strconv.Atoi(e.Salary)
		if err != nil {
			return 0, services.ErrInvalidSalary{ID: e.ID, Value: e.Salary}
		}

		if i == 0 || salary > highest {
			highest = salary
		}
	}

	return highest, nil
}

// TopEarners returns the names of the n best paid employees, best paid first. Ties keep their
// input order.
func TopEarners(employees []models.Employee, n int) ([]string, error) {
	type earner struct {
		name   string
		salary int
	}

	earners := make([]earner, 0, len(employees))

	for _, e := range employees {
		salary, err := strconv.Atoi(e.Salary)
		if err != nil {
			return nil, services.ErrInvalidSalary{ID: e.ID, Value: e.Salary}
		}

		earners = append(earners, earner{name: e.Name, salary: salary})
	}

	sort.SliceStable(earners, func(i, j int) bool {
		return earners[i].salary > earners[j].salary
	})

	n = max(0, min(n, len(earners)))

	names := make([]string, 0, n)
	for _, e := range earners[:n] {
		names = append(names, e.name)
	}

	return names, nil
}
