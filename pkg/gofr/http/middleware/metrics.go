package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

type histogramRecorder interface {
	RecordHistogram(ctx context.Context, name string, value float64, labels ...string)
}

// Metrics records the response time of every request in app_http_response. The path label is the
// route template, so employee ids never become label values.
func Metrics(m histogramRecorder) func(inner http.Handler) http.Handler {
	return func(inner http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}

			defer func() {
				m.RecordHistogram(r.Context(), "app_http_response", time.Since(start).Seconds(),
					"path", routePath(r), "method", r.Method, "status", strconv.Itoa(sw.code()))
			}()

			inner.ServeHTTP(sw, r)
		})
	}
}

// routePath is the template of the matched route, or the raw path without a trailing slash.
func routePath(r *http.Request) string {
	path := r.URL.Path

	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			path = tmpl
		}
	}

	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}

	return path
}
