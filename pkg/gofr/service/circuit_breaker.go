package service

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// States of a circuit, as published in app_http_circuit_breaker_state.
const (
	ClosedState = iota
	OpenState
)

const circuitBreakerStateGauge = "app_http_circuit_breaker_state"

// CircuitBreakerConfig opens the circuit of a service once more than Threshold consecutive calls
// failed. An open circuit rejects calls with ErrCircuitOpen. A call made more than Interval after
// the last check first checks the health of the service, and closes the circuit when it is UP.
type CircuitBreakerConfig struct {
	Threshold int
	Interval  time.Duration
}

func (cfg *CircuitBreakerConfig) AddOption(svc HTTP) HTTP {
	b := &breaker{threshold: cfg.Threshold, interval: cfg.Interval, health: svc.HealthCheck}

	if base := baseService(svc); base != nil && base.metrics != nil {
		b.metrics, b.service = base.metrics, base.name
		b.publish()
	}

	return decorate(svc, b.wrap)
}

type breaker struct {
	mu          sync.Mutex
	state       int
	failures    int
	lastChecked time.Time

	threshold int
	interval  time.Duration
	health    func(ctx context.Context) *Health
	metrics   Metrics
	service   string
}

func (b *breaker) wrap(next sendFunc) sendFunc {
	return func(ctx context.Context, c *call) (*http.Response, error) {
		if !b.allow(ctx) {
			return nil, ErrCircuitOpen
		}

		resp, err := next(ctx, c)
		b.record(failed(resp, err))

		return resp, err
	}
}

// allow reports whether a call may be sent. The health of an open circuit is checked at most once
// per interval, concurrent callers are rejected meanwhile.
func (b *breaker) allow(ctx context.Context) bool {
	b.mu.Lock()

	if b.state == ClosedState {
		b.mu.Unlock()

		return true
	}

	if time.Since(b.lastChecked) <= b.interval {
		b.mu.Unlock()

		return false
	}

	b.lastChecked = time.Now()
	b.mu.Unlock()

	if b.health(ctx).Status != serviceUp {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.state, b.failures = ClosedState, 0
	b.publish()

	return true
}

func (b *breaker) record(failure bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !failure {
		b.failures = 0

		return
	}

	b.failures++

	if b.failures > b.threshold && b.state == ClosedState {
		b.state = OpenState
		b.lastChecked = time.Now()
		b.publish()
	}
}

func (b *breaker) publish() {
	if b.metrics != nil {
		b.metrics.SetGauge(circuitBreakerStateGauge, float64(b.state), "service", b.service)
	}
}
