package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		level Level
		name  string
		color uint
	}{
		{DEBUG, "DEBUG", 36},
		{INFO, "INFO", 36},
		{WARN, "WARN", 33},
		{ERROR, "ERROR", 31},
		{FATAL, "FATAL", 31},
		{Level(99), "", 37},
	}

	for i, tc := range tests {
		assert.Equal(t, tc.name, tc.level.String(), "TEST[%d], Failed.\n", i)
		assert.Equal(t, tc.color, tc.level.color(), "TEST[%d], Failed.\n", i)
	}
}

func TestLevel_MarshalJSON(t *testing.T) {
	b, err := WARN.MarshalJSON()

	assert.NoError(t, err)
	assert.Equal(t, `"WARN"`, string(b))
}

func TestGetLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"Warn", WARN},
		{"error", ERROR},
		{"FATAL", FATAL},
		{"", INFO},
		{"notice", INFO},
	}

	for i, tc := range tests {
		assert.Equal(t, tc.expected, GetLevelFromString(tc.input), "TEST[%d], Failed.\n%s", i, tc.input)
	}
}
