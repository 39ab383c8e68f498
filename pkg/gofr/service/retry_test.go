package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryConfig_Get(t *testing.T) {
	tests := []struct {
		desc        string
		failures    int32
		maxRetries  int
		expStatus   int
		expAttempts int32
	}{
		{"success at first attempt", 0, 3, http.StatusOK, 1},
		{"success after retries", 2, 3, http.StatusOK, 3},
		{"retries exhausted", 5, 2, http.StatusInternalServerError, 3},
		{"retries disabled", 1, 0, http.StatusInternalServerError, 1},
	}

	for i, tc := range tests {
		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if attempts.Add(1) <= tc.failures {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			w.WriteHeader(http.StatusOK)
		}))

		svc := NewHTTPService("employee-store", server.URL, nil, nil, &RetryConfig{MaxRetries: tc.maxRetries})

		resp, err := svc.Get(context.Background(), "employees", nil)
		require.NoError(t, err, "TEST[%d], Failed.\n%s", i, tc.desc)

		resp.Body.Close()

		assert.Equal(t, tc.expStatus, resp.StatusCode, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.expAttempts, attempts.Load(), "TEST[%d], Failed.\n%s", i, tc.desc)

		server.Close()
	}
}

func TestRetryConfig_PostIsNotRetried(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewHTTPService("employee-store", server.URL, nil, nil, &RetryConfig{MaxRetries: 3})

	resp, err := svc.Post(context.Background(), "create", nil, []byte(`{}`))
	require.NoError(t, err)

	resp.Body.Close()

	assert.Equal(t, int32(1), attempts.Load())

	resp, err = svc.Delete(context.Background(), "delete/1", nil)
	require.NoError(t, err)

	resp.Body.Close()

	assert.Equal(t, int32(2), attempts.Load())
}

func TestRetryConfig_TransportError(t *testing.T) {
	svc := NewHTTPService("employee-store", "http://127.0.0.1:1", nil, nil, &RetryConfig{MaxRetries: 2})

	resp, err := svc.Get(context.Background(), "employees", nil)

	require.Error(t, err)
	assert.Nil(t, resp)
}
