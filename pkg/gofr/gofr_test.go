package gofr

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rqchallenge/employees/pkg/gofr/config"
	gofrHTTP "github.com/rqchallenge/employees/pkg/gofr/http"
	"github.com/rqchallenge/employees/pkg/gofr/testutil"
)

func newTestApp(configs map[string]string) *App {
	cfg := map[string]string{"LOG_LEVEL": "FATAL"}
	for k, v := range configs {
		cfg[k] = v
	}

	return NewWithConfig(config.NewMockConfig(cfg))
}

func serve(app *App, method, target, body string) *httptest.ResponseRecorder {
	app.httpServerSetup()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	app.httpServer.router.ServeHTTP(rec, req)

	return rec
}

func TestApp_Routes(t *testing.T) {
	app := newTestApp(nil)

	app.GET("/employees", func(*Context) (any, error) {
		return []string{"John", "Jay"}, nil
	})
	app.GET("/employees/{id}", func(c *Context) (any, error) {
		return nil, gofrHTTP.ErrorEntityNotFound{Name: "id", Value: c.PathParam("id")}
	})
	app.POST("/employees", func(c *Context) (any, error) {
		var body map[string]string

		if err := c.Bind(&body); err != nil {
			return nil, err
		}

		return body, nil
	})
	app.DELETE("/employees/{id}", func(*Context) (any, error) {
		return "successfully! deleted Record", nil
	})

	tests := []struct {
		desc    string
		method  string
		target  string
		body    string
		status  int
		expBody string
	}{
		{"list", http.MethodGet, "/employees", "", http.StatusOK, `{"data":["John","Jay"]}`},
		{"not found", http.MethodGet, "/employees/9", "", http.StatusNotFound, "No entity found with id: 9"},
		{"create", http.MethodPost, "/employees", `{"a":"b"}`, http.StatusCreated, `{"data":{"a":"b"}}`},
		{"create malformed", http.MethodPost, "/employees", `{"a":`, http.StatusBadRequest, "invalid request body"},
		{"delete", http.MethodDelete, "/employees/1", "", http.StatusOK, `{"data":"successfully! deleted Record"}`},
		{"alive", http.MethodGet, "/.well-known/alive", "", http.StatusOK, `{"data":{"status":"UP"}}`},
		{"unknown route", http.MethodGet, "/unknown", "", http.StatusNotFound, "route not registered"},
	}

	for i, tc := range tests {
		rec := serve(app, tc.method, tc.target, tc.body)

		assert.Equal(t, tc.status, rec.Code, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Contains(t, rec.Body.String(), tc.expBody, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestApp_Health(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	app := newTestApp(map[string]string{"APP_NAME": "employees"})
	app.AddHTTPService("employee-store", upstream.URL)

	rec := serve(app, http.MethodGet, "/.well-known/health", "")

	var body struct {
		Data struct {
			Status   string `json:"status"`
			Name     string `json:"name"`
			Services map[string]struct {
				Status string `json:"status"`
			} `json:"services"`
		} `json:"data"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "UP", body.Data.Status)
	assert.Equal(t, "employees", body.Data.Name)
	assert.Equal(t, "UP", body.Data.Services["employee-store"].Status)
}

func TestApp_RequestTimeout(t *testing.T) {
	app := newTestApp(map[string]string{"REQUEST_TIMEOUT": "1"})

	app.GET("/slow", func(c *Context) (any, error) {
		<-c.Done()

		return "late", nil
	})

	rec := serve(app, http.MethodGet, "/slow", "")

	assert.Equal(t, http.StatusRequestTimeout, rec.Code)
	assert.Contains(t, rec.Body.String(), "request timed out")
}

func TestApp_SpansInsideRequestTimeout(t *testing.T) {
	app := newTestApp(map[string]string{"REQUEST_TIMEOUT": "5"})

	app.GET("/traced", func(c *Context) (any, error) {
		for range 50 {
			c.Trace("work").End()
		}

		return "done", nil
	})

	for i := range 20 {
		rec := serve(app, http.MethodGet, "/traced", "")

		assert.Equal(t, http.StatusOK, rec.Code, "TEST[%d], Failed.\n", i)
		assert.Contains(t, rec.Body.String(), `{"data":"done"}`, "TEST[%d], Failed.\n", i)
	}
}

func TestApp_InvalidRequestTimeout(t *testing.T) {
	app := newTestApp(map[string]string{"REQUEST_TIMEOUT": "soon"})

	assert.Equal(t, time.Duration(0), app.requestTimeout())
}

func TestApp_PanicRecovery(t *testing.T) {
	var rec *httptest.ResponseRecorder

	// the logger binds os.Stderr when it is created, so the app is built inside the capture
	logs := testutil.StderrOutputForFunc(func() {
		app := newTestApp(map[string]string{"LOG_LEVEL": "ERROR"})

		app.GET("/panic", func(*Context) (any, error) {
			panic("unexpected nil employee")
		})

		rec = serve(app, http.MethodGet, "/panic", "")
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), http.StatusText(http.StatusInternalServerError))
	assert.Contains(t, logs, "unexpected nil employee")
}

func TestApp_RunAndShutdown(t *testing.T) {
	configs := testutil.NewServerConfigs(t)
	t.Setenv("LOG_LEVEL", "FATAL")

	app := New()

	app.GET("/employees", func(*Context) (any, error) {
		return []string{}, nil
	})

	stopped := make(chan struct{})

	go func() {
		app.Run()
		close(stopped)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(configs.HTTPHost + "/employees")
		if err != nil {
			return false
		}

		resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	resp, err := http.Get(configs.MetricsHost + "/metrics")
	require.NoError(t, err)

	metricsBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Contains(t, string(metricsBody), `app_http_response_count{method="GET",path="/employees",status="200"}`)
	assert.Contains(t, string(metricsBody), `app_info{app_name="employees",app_version="dev"} 1`)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, app.Shutdown(ctx))
	require.NoError(t, app.Shutdown(ctx), "second shutdown returns the first result")

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

func TestShutdownWithContext(t *testing.T) {
	errShutdown := errors.New("shutdown failed")

	tests := []struct {
		desc       string
		shutdown   func(context.Context) error
		forceClose func() error
		timeout    time.Duration
		expErr     error
	}{
		{"graceful", func(context.Context) error { return nil }, nil, time.Second, nil},
		{"shutdown error", func(context.Context) error { return errShutdown }, nil, time.Second, errShutdown},
		{"timeout forces close", func(ctx context.Context) error {
			<-ctx.Done()
			time.Sleep(50 * time.Millisecond)

			return nil
		}, func() error { return nil }, 10 * time.Millisecond, context.DeadlineExceeded},
	}

	for i, tc := range tests {
		ctx, cancel := context.WithTimeout(context.Background(), tc.timeout)

		err := ShutdownWithContext(ctx, tc.shutdown, tc.forceClose)

		cancel()

		if tc.expErr == nil {
			require.NoError(t, err, "TEST[%d], Failed.\n%s", i, tc.desc)

			continue
		}

		require.ErrorIs(t, err, tc.expErr, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestApp_ShutdownTimeout(t *testing.T) {
	tests := []struct {
		desc  string
		value string
		exp   time.Duration
	}{
		{"default", "", 30 * time.Second},
		{"configured", "5s", 5 * time.Second},
		{"invalid", "soon", shutDownTimeout},
	}

	for i, tc := range tests {
		app := newTestApp(map[string]string{"SHUTDOWN_GRACE_PERIOD": tc.value})

		assert.Equal(t, tc.exp, app.shutdownTimeout(), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestApp_SpanExporter(t *testing.T) {
	app := newTestApp(map[string]string{"TRACER_AUTH_KEY": "secret"})

	tests := []struct {
		desc        string
		exporter    string
		url         string
		expExporter bool
		expErr      string
	}{
		{"tracing disabled", "", "", false, ""},
		{"missing exporter", "", "http://localhost:9411/api/v2/spans", false, errTracerConfig.Error()},
		{"missing url", "zipkin", "", false, errTracerConfig.Error()},
		{"unsupported", "kafka", "localhost:9092", false, "unsupported TRACE_EXPORTER: kafka"},
		{"zipkin", "Zipkin", "http://localhost:9411/api/v2/spans", true, ""},
	}

	for i, tc := range tests {
		exporter, err := app.spanExporter(tc.exporter, tc.url)

		if tc.expErr != "" {
			require.EqualError(t, err, tc.expErr, "TEST[%d], Failed.\n%s", i, tc.desc)
		} else {
			require.NoError(t, err, "TEST[%d], Failed.\n%s", i, tc.desc)
		}

		assert.Equal(t, tc.expExporter, exporter != nil, "TEST[%d], Failed.\n%s", i, tc.desc)
	}

	assert.NotNil(t, app.tracerProvider)
}
