package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Responder writes the result of a handler as JSON: {"data": ...} on success and
// {"errors": [...]} on failure.
type Responder struct {
	w      http.ResponseWriter
	method string
}

// NewResponder answers a request made with method through w.
func NewResponder(w http.ResponseWriter, method string) *Responder {
	return &Responder{w: w, method: method}
}

type envelope struct {
	Data   any            `json:"data,omitempty"`
	Errors []errorPayload `json:"errors,omitempty"`
}

type errorPayload struct {
	Reason   string    `json:"reason"`
	Details  any       `json:"details,omitempty"`
	DateTime time.Time `json:"datetime"`
}

// An error picks its response status with StatusCode and adds context for the client with Details.
type (
	statusCoder interface{ StatusCode() int }
	detailer    interface{ Details() any }
)

// Respond writes data, or err when it is not nil. A 204 answer has no body.
func (r Responder) Respond(data any, err error) {
	status := r.status(data, err)

	r.w.Header().Set("Content-Type", "application/json")
	r.w.WriteHeader(status)

	if status == http.StatusNoContent {
		return
	}

	body := envelope{Data: data}
	if err != nil {
		body.Errors = []errorPayload{newErrorPayload(err)}
	}

	_ = json.NewEncoder(r.w).Encode(body)
}

// status of a success depends on the method and whether the handler returned data. An error without
// a status code, or with 0, is a 500.
func (r Responder) status(data any, err error) int {
	if err != nil {
		var sc statusCoder
		if errors.As(err, &sc) && sc.StatusCode() != 0 {
			return sc.StatusCode()
		}

		return http.StatusInternalServerError
	}

	switch {
	case r.method == http.MethodPost && data == nil:
		return http.StatusAccepted
	case r.method == http.MethodPost:
		return http.StatusCreated
	case r.method == http.MethodDelete && data == nil:
		return http.StatusNoContent
	default:
		return http.StatusOK
	}
}

func newErrorPayload(err error) errorPayload {
	p := errorPayload{Reason: err.Error(), DateTime: time.Now()}

	var d detailer
	if errors.As(err, &d) {
		p.Details = d.Details()
	}

	return p
}
