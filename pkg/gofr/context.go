package gofr

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/rqchallenge/employees/pkg/gofr/container"
	"github.com/rqchallenge/employees/pkg/gofr/logging"
)

// Context is handed to every Handler. It carries the request context, the request, the shared
// container and a logger that stamps entries with the trace id of the request.
type Context struct {
	context.Context

	Request

	*container.Container

	// nil when a handler is called directly
	responder Responder

	logging.ContextLogger
}

/*
Trace starts a span as a child of the current one and makes it the current span of c. The span has
to be ended by the caller:

	defer c.Trace("employee-gateway list").End()

Trace is not safe for concurrent use on the same Context.
*/
func (c *Context) Trace(name string) trace.Span {
	ctx, span := otel.GetTracerProvider().Tracer("employees-context").Start(c.Context, name)
	c.Context = ctx

	return span
}

// NewContext builds the Context of one request. w may be nil when the handler is called directly.
func NewContext(w Responder, r Request, c *container.Container) *Context {
	return &Context{
		Context:       r.Context(),
		Request:       r,
		Container:     c,
		responder:     w,
		ContextLogger: *logging.NewContextLogger(r.Context(), c.Logger),
	}
}
