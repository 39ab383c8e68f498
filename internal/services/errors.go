package services

import (
	"fmt"
	"net/http"
)

// ErrUpstream is returned when the employee store cannot be reached or answers with something
// other than what the operation expects.
type ErrUpstream struct {
	Operation string
	Cause     error
}

func (e ErrUpstream) Error() string {
	return fmt.Sprintf("employee store failed to %s: %v", e.Operation, e.Cause)
}

func (e ErrUpstream) Unwrap() error {
	return e.Cause
}

func (ErrUpstream) StatusCode() int {
	return http.StatusBadGateway
}

// ErrInvalidSalary reports a salary that is not an integer.
type ErrInvalidSalary struct {
	ID    string
	Value string
}

func (e ErrInvalidSalary) Error() string {
	return fmt.Sprintf("salary %q of employee %s is not a number", e.Value, e.ID)
}

func (ErrInvalidSalary) StatusCode() int {
	return http.StatusUnprocessableEntity
}

type ErrDuplicateID struct {
	ID string
}

func (e ErrDuplicateID) Error() string {
	return fmt.Sprintf("employee with id %s already exists", e.ID)
}

func (ErrDuplicateID) StatusCode() int {
	return http.StatusConflict
}

// ErrCreateFailed is returned when the store refuses to create a record, which happens when the key
// does not match the id of the record.
type ErrCreateFailed struct {
	Key string
	ID  string
}

func (e ErrCreateFailed) Error() string {
	return fmt.Sprintf("employee not created: key %q does not match id %q", e.Key, e.ID)
}

func (ErrCreateFailed) StatusCode() int {
	return http.StatusUnprocessableEntity
}

// ErrNoEmployees is returned by aggregates computed over an empty collection.
type ErrNoEmployees struct{}

func (ErrNoEmployees) Error() string {
	return "No employee information available"
}

func (ErrNoEmployees) StatusCode() int {
	return http.StatusNotFound
}
