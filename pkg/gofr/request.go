package gofr

import (
	"context"
)

// Request is what a handler sees of the incoming request.
type Request interface {
	Context() context.Context
	PathParam(string) string
	Bind(any) error
}
