package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// Request adapts an *http.Request to the handler side. Path variables come from the matched mux route.
type Request struct {
	req  *http.Request
	vars map[string]string
}

func NewRequest(r *http.Request) *Request {
	return &Request{req: r, vars: mux.Vars(r)}
}

func (r *Request) Context() context.Context {
	return r.req.Context()
}

// PathParam returns the route variable name, or an empty string when the route has none.
func (r *Request) PathParam(name string) string {
	return r.vars[name]
}

// Bind decodes the JSON body into i. A request without a content type is decoded as JSON as well.
// The body is buffered and put back, so Bind may be called more than once.
func (r *Request) Bind(i any) error {
	if mt := mediaType(r.req.Header.Get("Content-Type")); mt != "" && mt != "application/json" {
		return ErrorInvalidBody{Reason: "unsupported content type " + mt}
	}

	data, err := io.ReadAll(r.req.Body)
	if err != nil {
		return ErrorInvalidBody{Reason: err.Error()}
	}

	r.req.Body = io.NopCloser(bytes.NewReader(data))

	if err := json.Unmarshal(data, i); err != nil {
		return ErrorInvalidBody{Reason: err.Error()}
	}

	return nil
}

func mediaType(header string) string {
	mt, _, _ := strings.Cut(header, ";")

	return strings.TrimSpace(mt)
}
