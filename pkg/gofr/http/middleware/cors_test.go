package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rqchallenge/employees/pkg/gofr/config"
)

func TestCORSConfigs(t *testing.T) {
	cfg := config.NewMockConfig(map[string]string{
		"ACCESS_CONTROL_ALLOW_ORIGIN":       "https://hr.example.com",
		"ACCESS_CONTROL_ALLOW_HEADERS":      "X-Api-Key",
		"ACCESS_CONTROL_ALLOW_CREDENTIALS":  "true",
		"ACCESS_CONTROL_MAX_AGE":            "600",
		"ACCESS_CONTROL_ALLOW_CUSTOMHEADER": "abc",
	})

	exp := map[string]string{
		"Access-Control-Allow-Origin":      "https://hr.example.com",
		"Access-Control-Allow-Headers":     "X-Api-Key",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Max-Age":           "600",
	}

	assert.Equal(t, exp, CORSConfigs(cfg))
}

func TestCORS(t *testing.T) {
	routeReached := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusFound)
		_, _ = w.Write([]byte("employees"))
	})

	tests := []struct {
		desc       string
		overrides  map[string]string
		method     string
		expCode    int
		expBody    string
		expHeaders map[string]string
	}{
		{"defaults", nil, http.MethodGet, http.StatusFound, "employees", map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": allowedMethods,
			"Access-Control-Allow-Headers": allowedHeaders,
		}},
		{"preflight", nil, http.MethodOptions, http.StatusOK, "", map[string]string{
			"Access-Control-Allow-Origin": "*",
		}},
		{"overrides", map[string]string{
			"Access-Control-Allow-Origin":      "https://hr.example.com",
			"Access-Control-Allow-Headers":     " X-Api-Key",
			"Access-Control-Allow-Credentials": "true",
		}, http.MethodGet, http.StatusFound, "employees", map[string]string{
			"Access-Control-Allow-Origin":      "https://hr.example.com",
			"Access-Control-Allow-Headers":     allowedHeaders + ", X-Api-Key",
			"Access-Control-Allow-Methods":     allowedMethods,
			"Access-Control-Allow-Credentials": "true",
		}},
	}

	for i, tc := range tests {
		w := httptest.NewRecorder()

		CORS(tc.overrides)(routeReached).ServeHTTP(w, httptest.NewRequest(tc.method, "/employees", http.NoBody))

		assert.Equal(t, tc.expCode, w.Code, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.expBody, w.Body.String(), "TEST[%d], Failed.\n%s", i, tc.desc)

		for name, value := range tc.expHeaders {
			assert.Equal(t, value, w.Header().Get(name), "TEST[%d], Failed.\n%s", i, tc.desc)
		}
	}
}
