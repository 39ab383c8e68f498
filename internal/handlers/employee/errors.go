package employee

import "net/http"

type errorNotFound struct {
	reason string
}

func (e errorNotFound) Error() string {
	return e.reason
}

func (errorNotFound) StatusCode() int {
	return http.StatusNotFound
}

type errorCreate struct {
	cause error
}

func (errorCreate) Error() string {
	return "An error occurred"
}

func (e errorCreate) Unwrap() error {
	return e.cause
}

func (errorCreate) StatusCode() int {
	return http.StatusInternalServerError
}
