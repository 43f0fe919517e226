package service

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateGate enforces a minimum interval between remote requests. The gate is
// global across all credentials: it under-utilizes a multi-key setup but
// keeps the aggregate rate under the configured ceiling. Acquire never
// fails, it only delays.
type RateGate struct {
	limiter *rate.Limiter
}

// NewRateGate allows one request per 60s/requestsPerMinute. Burst is 1, so
// grants are strictly spaced; the first grant is immediate.
func NewRateGate(requestsPerMinute int) *RateGate {
	return &RateGate{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
	}
}

// Acquire blocks until at least the minimum interval has passed since the
// last grant.
func (g *RateGate) Acquire() {
	g.limiter.Wait(context.Background())
}
