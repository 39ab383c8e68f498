package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type MockHandlerForTracing struct{}

// ServeHTTP writes the trace id found in the request context.
func (*MockHandlerForTracing) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	traceID := otelTrace.SpanFromContext(req.Context()).SpanContext().TraceID().String()
	_, _ = w.Write([]byte(traceID))
}

func TestTrace(t *testing.T) {
	otel.SetTracerProvider(trace.NewTracerProvider())
	otel.SetTextMapPropagator(propagation.TraceContext{})

	tests := []struct {
		desc        string
		traceparent string
		expTraceID  string
	}{
		{"new trace", "", ""},
		{"propagated trace", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", "4bf92f3577b34da6a3ce929d0e0e4736"},
	}

	for i, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/dummy", http.NoBody)
		if tc.traceparent != "" {
			req.Header.Set("traceparent", tc.traceparent)
		}

		recorder := httptest.NewRecorder()

		Tracer(&MockHandlerForTracing{}).ServeHTTP(recorder, req)

		body := recorder.Body.String()

		assert.Len(t, body, 32, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.NotEqual(t, otelTrace.TraceID{}.String(), body, "TEST[%d], Failed.\n%s", i, tc.desc)

		if tc.expTraceID != "" {
			assert.Equal(t, tc.expTraceID, body, "TEST[%d], Failed.\n%s", i, tc.desc)
		}
	}
}
