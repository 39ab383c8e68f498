package middleware

import (
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rqchallenge/employees/pkg/gofr/config"
)

const (
	allowedHeaders = "Authorization, Content-Type, x-requested-with, origin, true-client-ip, X-Correlation-ID"
	allowedMethods = "GET, POST, DELETE, OPTIONS"

	allowHeadersHeader = "Access-Control-Allow-Headers"
)

// corsKeys are the config keys that override a CORS header: ACCESS_CONTROL_MAX_AGE sets
// Access-Control-Max-Age and so on.
var corsKeys = []string{
	"ACCESS_CONTROL_ALLOW_ORIGIN",
	"ACCESS_CONTROL_ALLOW_HEADERS",
	"ACCESS_CONTROL_ALLOW_CREDENTIALS",
	"ACCESS_CONTROL_ALLOW_METHODS",
	"ACCESS_CONTROL_EXPOSE_HEADERS",
	"ACCESS_CONTROL_MAX_AGE",
}

// CORSConfigs returns the CORS overrides set in c, keyed by header name.
func CORSConfigs(c config.Config) map[string]string {
	overrides := make(map[string]string)
	caser := cases.Title(language.Und)

	for _, key := range corsKeys {
		if value := c.Get(key); value != "" {
			name := caser.String(strings.ReplaceAll(key, "_", " "))
			overrides[strings.ReplaceAll(name, " ", "-")] = value
		}
	}

	return overrides
}

// CORS sets the CORS headers of every response. An override replaces the default of its header,
// except that Access-Control-Allow-Headers extends the default list. Preflight requests are answered
// with 200 without reaching the route.
func CORS(overrides map[string]string) func(inner http.Handler) http.Handler {
	headers := corsHeaders(overrides)

	return func(inner http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range headers {
				w.Header().Set(name, value)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)

				return
			}

			inner.ServeHTTP(w, r)
		})
	}
}

func corsHeaders(overrides map[string]string) map[string]string {
	headers := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": allowedMethods,
		allowHeadersHeader:             allowedHeaders,
	}

	for name, value := range overrides {
		if name == allowHeadersHeader {
			value = allowedHeaders + ", " + strings.TrimSpace(value)
		}

		headers[name] = value
	}

	return headers
}
