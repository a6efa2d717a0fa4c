// Package throttle bounds how often gesture samples reach the viewport.
package throttle

import (
	"time"

	"golang.org/x/time/rate"
)

// Clock returns the current time. Tests inject a fake one.
type Clock func() time.Time

// Gate admits at most one sample per interval. Samples arriving inside the
// interval are dropped, not queued. A Gate is not safe for concurrent use
// across gestures; give each gesture stream its own.
type Gate struct {
	limiter *rate.Limiter
	now     Clock
}

// NewGate returns a gate admitting hz samples per second. hz <= 0 disables
// throttling. A nil clock means time.Now.
func NewGate(hz float64, clock Clock) *Gate {
	if clock == nil {
		clock = time.Now
	}
	limit := rate.Inf
	if hz > 0 {
		limit = rate.Every(time.Duration(float64(time.Second) / hz))
	}
	return &Gate{limiter: rate.NewLimiter(limit, 1), now: clock}
}

// Allow reports whether a sample arriving now should be processed.
func (g *Gate) Allow() bool {
	return g.limiter.AllowN(g.now(), 1)
}

// Disabled reports whether every sample is admitted.
func (g *Gate) Disabled() bool {
	return g.limiter.Limit() == rate.Inf
}

// Interval returns the minimum spacing between admitted samples.
func (g *Gate) Interval() time.Duration {
	if g.Disabled() {
		return 0
	}
	return time.Duration(float64(time.Second) / float64(g.limiter.Limit()))
}
