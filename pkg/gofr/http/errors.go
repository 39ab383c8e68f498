// Package http holds the HTTP side of the server: the mux router, request binding, the JSON
// responder and the errors that carry their own status code.
package http

import (
	"fmt"
	"net/http"
)

// ErrorEntityNotFound reports that no entity has the field Name equal to Value.
type ErrorEntityNotFound struct {
	Name  string
	Value string
}

func (e ErrorEntityNotFound) Error() string {
	return fmt.Sprintf("No entity found with %s: %s", e.Name, e.Value)
}

func (ErrorEntityNotFound) StatusCode() int { return http.StatusNotFound }

// ErrorEntityAlreadyExist reports a write that would duplicate the entity whose Name is Value.
type ErrorEntityAlreadyExist struct {
	Name  string
	Value string
}

func (e ErrorEntityAlreadyExist) Error() string {
	return fmt.Sprintf("entity with %s: %s already exists", e.Name, e.Value)
}

func (ErrorEntityAlreadyExist) StatusCode() int { return http.StatusConflict }

// ErrorMissingParam reports a blank path parameter.
type ErrorMissingParam struct {
	Name string
}

func (e ErrorMissingParam) Error() string {
	return fmt.Sprintf("parameter %s is required", e.Name)
}

func (ErrorMissingParam) StatusCode() int { return http.StatusBadRequest }

// ErrorInvalidBody reports a request body that cannot be decoded.
type ErrorInvalidBody struct {
	Reason string
}

func (e ErrorInvalidBody) Error() string { return "invalid request body: " + e.Reason }

func (ErrorInvalidBody) StatusCode() int { return http.StatusBadRequest }

// ErrorInvalidRoute is answered for paths or methods no route matches.
type ErrorInvalidRoute struct{}

func (ErrorInvalidRoute) Error() string { return "route not registered" }

func (ErrorInvalidRoute) StatusCode() int { return http.StatusNotFound }

// ErrorRequestTimeout is answered when the handler outlives REQUEST_TIMEOUT.
type ErrorRequestTimeout struct{}

func (ErrorRequestTimeout) Error() string { return "request timed out" }

func (ErrorRequestTimeout) StatusCode() int { return http.StatusRequestTimeout }

// ErrorPanicRecovery is answered when the handler panicked. The panic itself is only logged.
type ErrorPanicRecovery struct{}

func (ErrorPanicRecovery) Error() string { return http.StatusText(http.StatusInternalServerError) }

func (ErrorPanicRecovery) StatusCode() int { return http.StatusInternalServerError }
