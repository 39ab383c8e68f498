package models

import (
	"encoding/json"
	"errors"
)

var errCreateRequestEntries = errors.New("create request must hold exactly one employee keyed by its id")

// Employee is the record exchanged with the employee store. Salary and age are numbers written as strings.
type Employee struct {
	ID           string `json:"id"`
	Name         string `json:"employee_name"`
	Salary       string `json:"employee_salary"`
	Age          string `json:"employee_age"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// CreateRequest pairs the key a record is stored under with the record itself.
// On the wire it is a JSON object with exactly one member: {"<key>": {employee}}.
type CreateRequest struct {
	Key      string
	Employee Employee
}

func (c CreateRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Employee{c.Key: c.Employee})
}

func (c *CreateRequest) UnmarshalJSON(b []byte) error {
	var entries map[string]Employee

	if err := json.Unmarshal(b, &entries); err != nil {
		return err
	}

	if len(entries) != 1 {
		return errCreateRequestEntries
	}

	for k, e := range entries {
		if k == "" {
			return errCreateRequestEntries
		}

		c.Key, c.Employee = k, e
	}

	return nil
}

// ListResponse is the envelope of the research listing: {"status":"success","data":[...]}.
type ListResponse struct {
	Status string     `json:"status"`
	Data   []Employee `json:"data"`
}
