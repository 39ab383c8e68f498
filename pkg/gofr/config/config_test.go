package config

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type warnings struct {
	bytes.Buffer
}

func (w *warnings) Warnf(format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

func TestInt(t *testing.T) {
	tests := []struct {
		desc    string
		value   string
		exp     int
		expWarn string
	}{
		{"unset", "", 8000, ""},
		{"valid", "8001", 8001, ""},
		{"below minimum", "0", 8000, `invalid value of config HTTP_PORT: "0", using 8000`},
		{"not a number", "eighty", 8000, `invalid value of config HTTP_PORT: "eighty", using 8000`},
	}

	for i, tc := range tests {
		w := &warnings{}

		got := Int(NewMockConfig(map[string]string{"HTTP_PORT": tc.value}), w, "HTTP_PORT", 8000, 1)

		assert.Equal(t, tc.exp, got, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Contains(t, w.String(), tc.expWarn, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		desc  string
		value string
		exp   time.Duration
	}{
		{"unset", "", 5 * time.Second},
		{"milliseconds", "750ms", 750 * time.Millisecond},
		{"zero", "0s", 5 * time.Second},
		{"negative", "-1s", 5 * time.Second},
		{"no unit", "10", 5 * time.Second},
	}

	for i, tc := range tests {
		cfg := NewMockConfig(map[string]string{"UPSTREAM_TIMEOUT": tc.value})

		assert.Equal(t, tc.exp, Duration(cfg, nil, "UPSTREAM_TIMEOUT", 5*time.Second), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		desc  string
		value string
		exp   float64
	}{
		{"unset", "", 1},
		{"half", "0.5", 0.5},
		{"never", "0", 0},
		{"above one", "1.5", 1},
		{"not a number", "half", 1},
	}

	for i, tc := range tests {
		cfg := NewMockConfig(map[string]string{"TRACER_RATIO": tc.value})

		assert.InDelta(t, tc.exp, Fraction(cfg, nil, "TRACER_RATIO", 1), 0, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		value string
		exp   bool
	}{
		{"", true},
		{"false", false},
		{"0", false},
		{"TRUE", true},
		{"maybe", true},
	}

	for i, tc := range tests {
		cfg := NewMockConfig(map[string]string{"MOCK_UPSTREAM_ENABLED": tc.value})

		assert.Equal(t, tc.exp, Bool(cfg, nil, "MOCK_UPSTREAM_ENABLED", true), "TEST[%d], Failed.\n%s", i, tc.value)
	}
}
