// Package service is the outbound HTTP client of the gateway. A client is built for one service
// address and decorated with options for retries, a circuit breaker, default headers and a timeout.
package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptrace"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/httptrace/otelhttptrace"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/rqchallenge/employees/pkg/gofr/logging"
)

const defaultTimeout = 5 * time.Second

// HTTP calls one service. Paths are relative to the address of the service.
type HTTP interface {
	Get(ctx context.Context, path string, queryParams map[string]any) (*http.Response, error)
	Post(ctx context.Context, path string, queryParams map[string]any, body []byte) (*http.Response, error)
	Delete(ctx context.Context, path string, body []byte) (*http.Response, error)

	// HealthCheck calls the /.well-known/alive endpoint of the service.
	HealthCheck(ctx context.Context) *Health
}

type Logger interface {
	Info(args ...any)
	Error(args ...any)
}

type Metrics interface {
	RecordHistogram(ctx context.Context, name string, value float64, labels ...string)
	SetGauge(name string, value float64, labels ...string)
}

// httpService sends the calls. Every call is a client span, joins the trace of ctx on the callee
// through the traceparent header, and is logged and timed in app_http_service_response.
type httpService struct {
	*http.Client

	tracer  trace.Tracer
	url     string
	name    string
	log     Logger
	metrics Metrics
}

// NewHTTPService creates the client of the service at address. name identifies the service in logs
// and metrics. log and metrics may be nil.
func NewHTTPService(name, address string, log Logger, metrics Metrics, options ...Options) HTTP {
	h := &httpService{
		Client:  &http.Client{Timeout: defaultTimeout},
		tracer:  otel.Tracer("employees-http-client"),
		url:     strings.TrimRight(address, "/"),
		name:    name,
		log:     log,
		metrics: metrics,
	}

	var svc HTTP = &client{send: h.send, health: h.HealthCheck, base: h}

	for _, o := range options {
		svc = o.AddOption(svc)
	}

	return svc
}

func (h *httpService) send(ctx context.Context, c *call) (*http.Response, error) {
	uri := strings.TrimRight(h.url+"/"+strings.TrimLeft(c.path, "/"), "/")

	ctx, span := h.tracer.Start(ctx, c.method+" "+uri, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	req, err := http.NewRequestWithContext(httptrace.WithClientTrace(ctx, otelhttptrace.NewClientTrace(ctx)),
		c.method, uri, bytes.NewReader(c.body))
	if err != nil {
		return nil, wrapRequestError(err, c.method, uri)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	if len(c.body) > 0 && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	encodeQuery(req, c.query)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	entry := &logging.HTTPEntry{
		TraceID:   span.SpanContext().TraceID().String(),
		Service:   h.name,
		StartTime: time.Now(),
		Method:    c.method,
		URI:       uri,
	}

	resp, err := h.Do(req)
	elapsed := time.Since(entry.StartTime)

	entry.ResponseTime = elapsed.Microseconds()

	if err != nil {
		entry.Status, entry.Error = http.StatusInternalServerError, err.Error()
	} else {
		entry.Status = resp.StatusCode
	}

	h.observe(ctx, entry, elapsed)

	if err != nil {
		return nil, wrapRequestError(err, c.method, uri)
	}

	return resp, nil
}

func (h *httpService) observe(ctx context.Context, e *logging.HTTPEntry, elapsed time.Duration) {
	if h.log != nil {
		if e.Error != "" {
			h.log.Error(e)
		} else {
			h.log.Info(e)
		}
	}

	if h.metrics != nil {
		h.metrics.RecordHistogram(ctx, "app_http_service_response", elapsed.Seconds(),
			"service", h.name, "method", e.Method, "status", strconv.Itoa(e.Status))
	}
}

// encodeQuery adds params to the query of req. A []string value becomes a repeated parameter.
func encodeQuery(req *http.Request, params map[string]any) {
	if len(params) == 0 {
		return
	}

	q := req.URL.Query()

	for k, v := range params {
		if values, ok := v.([]string); ok {
			for _, s := range values {
				q.Add(k, s)
			}

			continue
		}

		q.Set(k, fmt.Sprint(v))
	}

	req.URL.RawQuery = q.Encode()
}
