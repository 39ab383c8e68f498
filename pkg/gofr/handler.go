package gofr

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rqchallenge/employees/pkg/gofr/container"
	gofrHTTP "github.com/rqchallenge/employees/pkg/gofr/http"
	"github.com/rqchallenge/employees/pkg/gofr/logging"
)

type Handler func(c *Context) (any, error)

/*
The handler struct carries the container into ServeHTTP so that the Context can be built per request
without looking the dependencies up again.
*/
type handler struct {
	function       Handler
	container      *container.Container
	requestTimeout time.Duration
}

func (h handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c := NewContext(gofrHTTP.NewResponder(w, r.Method), gofrHTTP.NewRequest(r), h.container)

	if h.requestTimeout > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		c.Context = ctx
	}

	// Trace replaces c.Context from the handler goroutine, so the deadline is watched on this copy.
	reqCtx := c.Context

	done := make(chan struct{})
	panicked := make(chan struct{})

	var (
		result any
		err    error
	)

	go func() {
		defer panicRecoveryHandler(h.container.Logger, panicked)

		result, err = h.function(c)

		close(done)
	}()

	select {
	case <-reqCtx.Done():
		// the handler goroutine may still write result and err, so they are not read here
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			c.responder.Respond(nil, gofrHTTP.ErrorRequestTimeout{})

			return
		}

		// client went away, nobody reads the response
		return
	case <-done:
	case <-panicked:
		c.responder.Respond(nil, gofrHTTP.ErrorPanicRecovery{})

		return
	}

	c.responder.Respond(result, err)
}

func healthHandler(c *Context) (any, error) {
	return c.Health(c), nil
}

func liveHandler(*Context) (any, error) {
	return struct {
		Status string `json:"status"`
	}{Status: "UP"}, nil
}

func catchAllHandler(*Context) (any, error) {
	return nil, gofrHTTP.ErrorInvalidRoute{}
}

func panicRecoveryHandler(log logging.Logger, panicked chan struct{}) {
	re := recover()
	if re != nil {
		logging.LogPanic(re, log)

		close(panicked)
	}
}
