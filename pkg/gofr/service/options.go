package service

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Options decorate an HTTP service. NewHTTPService applies them in order, each one wrapping the
// result of the previous.
type Options interface {
	AddOption(HTTP) HTTP
}

// call is one outgoing request as the decorators see it.
type call struct {
	method  string
	path    string
	query   map[string]any
	body    []byte
	headers map[string]string
}

type sendFunc func(ctx context.Context, c *call) (*http.Response, error)

// client is a link of the decorator chain. send is the send of the link below wrapped by the
// option, base the undecorated service at the end of the chain.
type client struct {
	send   sendFunc
	health func(ctx context.Context) *Health
	base   *httpService
}

func (c *client) Get(ctx context.Context, path string, query map[string]any) (*http.Response, error) {
	return c.send(ctx, &call{method: http.MethodGet, path: path, query: query})
}

func (c *client) Post(ctx context.Context, path string, query map[string]any, body []byte) (*http.Response, error) {
	return c.send(ctx, &call{method: http.MethodPost, path: path, query: query, body: body})
}

func (c *client) Delete(ctx context.Context, path string, body []byte) (*http.Response, error) {
	return c.send(ctx, &call{method: http.MethodDelete, path: path, body: body})
}

func (c *client) HealthCheck(ctx context.Context) *Health {
	return c.health(ctx)
}

var errUnsupportedMethod = errors.New("unsupported method")

// decorate routes the calls of svc through wrap. Health checks bypass the decorators.
func decorate(svc HTTP, wrap func(next sendFunc) sendFunc) HTTP {
	if c, ok := svc.(*client); ok {
		return &client{send: wrap(c.send), health: c.health, base: c.base}
	}

	next := func(ctx context.Context, c *call) (*http.Response, error) {
		switch c.method {
		case http.MethodGet:
			return svc.Get(ctx, c.path, c.query)
		case http.MethodPost:
			return svc.Post(ctx, c.path, c.query, c.body)
		case http.MethodDelete:
			return svc.Delete(ctx, c.path, c.body)
		}

		return nil, errors.Wrap(errUnsupportedMethod, c.method)
	}

	return &client{send: wrap(next), health: svc.HealthCheck}
}

// baseService returns the undecorated service below svc, or nil when svc was not built here.
func baseService(svc HTTP) *httpService {
	if c, ok := svc.(*client); ok {
		return c.base
	}

	return nil
}

// WithTimeout bounds every call, reading the response body included.
type WithTimeout struct {
	Timeout time.Duration
}

func (w *WithTimeout) AddOption(svc HTTP) HTTP {
	if base := baseService(svc); base != nil && w.Timeout > 0 {
		base.Client.Timeout = w.Timeout
	}

	return svc
}
