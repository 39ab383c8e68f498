package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	gofrHTTP "github.com/rqchallenge/employees/pkg/gofr/http"
	"github.com/rqchallenge/employees/pkg/gofr/logging"
)

// statusWriter remembers the first status written to the response.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}

	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	return w.ResponseWriter.Write(b)
}

// code is the status sent to the client. A handler that wrote nothing answered 200.
func (w *statusWriter) code() int {
	if w.status == 0 {
		return http.StatusOK
	}

	return w.status
}

type logger interface {
	Info(args ...any)
	Error(args ...any)
}

// Logging logs every request once it is answered, at ERROR for 5xx responses. Each response carries
// an X-Correlation-ID header holding the trace id of the request span, or a random UUID when the
// request has no valid span. A panic below this middleware is logged and answered with 500.
func Logging(log logger) func(inner http.Handler) http.Handler {
	return func(inner http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w}
			entry := &logging.HTTPEntry{
				StartTime: time.Now(),
				Method:    r.Method,
				URI:       r.RequestURI,
				UserAgent: r.UserAgent(),
				IP:        clientIP(r),
			}

			if sc := trace.SpanFromContext(r.Context()).SpanContext(); sc.IsValid() {
				entry.TraceID, entry.SpanID = sc.TraceID().String(), sc.SpanID().String()
			} else {
				entry.TraceID = uuid.NewString()
			}

			sw.Header().Set("X-Correlation-ID", entry.TraceID)

			defer func() {
				if re := recover(); re != nil {
					logging.LogPanic(re, log)
					gofrHTTP.NewResponder(sw, r.Method).Respond(nil, gofrHTTP.ErrorPanicRecovery{})
				}

				if log == nil {
					return
				}

				entry.ResponseTime = time.Since(entry.StartTime).Microseconds()
				entry.Status = sw.code()

				if entry.Status >= http.StatusInternalServerError {
					log.Error(entry)
				} else {
					log.Info(entry)
				}
			}()

			inner.ServeHTTP(sw, r)
		})
	}
}

// clientIP is the first X-Forwarded-For entry, which names the originating client, or the remote
// address when the header is absent.
func clientIP(r *http.Request) string {
	first, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
	if ip := strings.TrimSpace(first); ip != "" {
		return ip
	}

	return r.RemoteAddr
}
