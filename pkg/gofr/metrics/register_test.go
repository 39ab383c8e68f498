package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rqchallenge/employees/pkg/gofr/logging"
	"github.com/rqchallenge/employees/pkg/gofr/testutil"
)

func scrape(t *testing.T, m Manager) string {
	t.Helper()

	server := httptest.NewServer(GetHandler(m))
	defer server.Close()

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(body)
}

func TestMetricsManager_RecordsAllKinds(t *testing.T) {
	m := NewMetricsManager(logging.NewMockLogger(logging.ERROR))
	ctx := context.Background()

	m.NewCounter("test_upstream_failures", "upstream failures")
	m.NewHistogram("test_response", "response time", .01, .1, 1)
	m.NewGauge("test_store_size", "number of records")

	m.IncrementCounter(ctx, "test_upstream_failures", "operation", "list")
	m.IncrementCounter(ctx, "test_upstream_failures", "operation", "list")
	m.RecordHistogram(ctx, "test_response", 0.05, "path", "/employees", "method", "GET")
	m.SetGauge("test_store_size", 2)

	body := scrape(t, m)

	assert.Contains(t, body, `test_upstream_failures{operation="list"} 2`)
	assert.Contains(t, body, `test_response_bucket{method="GET",path="/employees",le="0.1"} 1`)
	assert.Contains(t, body, "test_store_size 2")
	assert.Contains(t, body, "go_goroutines")
}

func TestMetricsManager_Errors(t *testing.T) {
	tests := []struct {
		desc   string
		record func(m Manager)
		errLog string
	}{
		{"unregistered metric", func(m Manager) {
			m.IncrementCounter(context.Background(), "unknown_counter")
		}, "Metrics unknown_counter is not registered"},
		{"odd number of labels", func(m Manager) {
			m.NewCounter("odd_labels", "desc")
			m.IncrementCounter(context.Background(), "odd_labels", "operation")
		}, errInvalidLabels.Error()},
		{"wrong metric type", func(m Manager) {
			m.NewGauge("a_gauge", "desc")
			m.IncrementCounter(context.Background(), "a_gauge")
		}, "Metrics a_gauge is not a counter"},
		{"changed label names", func(m Manager) {
			m.NewCounter("changing", "desc")
			m.IncrementCounter(context.Background(), "changing", "a", "1")
			m.IncrementCounter(context.Background(), "changing", "b", "1")
		}, errLabelsMismatch.Error()},
	}

	for i, tc := range tests {
		out := testutil.StderrOutputForFunc(func() {
			tc.record(NewMetricsManager(logging.NewMockLogger(logging.INFO)))
		})

		assert.Contains(t, out, tc.errLog, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestMetricsManager_DuplicateRegistration(t *testing.T) {
	out := testutil.StdoutOutputForFunc(func() {
		m := NewMetricsManager(logging.NewMockLogger(logging.INFO))
		m.NewCounter("dup", "desc")
		m.NewCounter("dup", "desc")
	})

	assert.Contains(t, out, "Metrics dup already registered")
}

func TestGetHandler_Pprof(t *testing.T) {
	server := httptest.NewServer(GetHandler(NewMetricsManager(logging.NewMockLogger(logging.ERROR))))
	defer server.Close()

	resp, err := http.Get(server.URL + "/debug/pprof/")
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
