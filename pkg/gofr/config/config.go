// Package config reads the service configuration from env files and the process environment, and
// parses typed values such as ports, timeouts and feature switches out of it.
package config

import (
	"strconv"
	"time"
)

// Config gives read access to configuration values by key. An empty value counts as unset.
type Config interface {
	Get(key string) string
	GetOrDefault(key, defaultValue string) string
}

// Warner receives the complaint about an invalid value. It may be nil.
type Warner interface {
	Warnf(format string, args ...any)
}

// Int reads key as an integer of at least minimum.
func Int(c Config, log Warner, key string, def, minimum int) int {
	return parse(c, log, key, def, func(s string) (int, bool) {
		n, err := strconv.Atoi(s)

		return n, err == nil && n >= minimum
	})
}

// Duration reads key as a positive Go duration such as "750ms" or "10s".
func Duration(c Config, log Warner, key string, def time.Duration) time.Duration {
	return parse(c, log, key, def, func(s string) (time.Duration, bool) {
		d, err := time.ParseDuration(s)

		return d, err == nil && d > 0
	})
}

// Fraction reads key as a number between 0 and 1, such as a sampling ratio.
func Fraction(c Config, log Warner, key string, def float64) float64 {
	return parse(c, log, key, def, func(s string) (float64, bool) {
		f, err := strconv.ParseFloat(s, 64)

		return f, err == nil && f >= 0 && f <= 1
	})
}

// Bool reads key as a boolean in any form strconv.ParseBool accepts.
func Bool(c Config, log Warner, key string, def bool) bool {
	return parse(c, log, key, def, func(s string) (bool, bool) {
		b, err := strconv.ParseBool(s)

		return b, err == nil
	})
}

// parse returns def for an unset key, and for a value conv rejects after warning log about it.
func parse[T any](c Config, log Warner, key string, def T, conv func(string) (T, bool)) T {
	value := c.Get(key)
	if value == "" {
		return def
	}

	v, ok := conv(value)
	if !ok {
		if log != nil {
			log.Warnf("invalid value of config %s: %q, using %v", key, value, def)
		}

		return def
	}

	return v
}

func getOrDefault(c Config, key, def string) string {
	if v := c.Get(key); v != "" {
		return v
	}

	return def
}
