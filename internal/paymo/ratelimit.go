package paymo

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// Quota headers advertised by the API on every response. Each one is
// optional and parsed independently.
const (
	headerRateLimit     = "X-Ratelimit-Limit"
	headerRateRemaining = "X-Ratelimit-Remaining"
	headerRateDecay     = "X-Ratelimit-Decay-Period"
)

// RateLimit tracks the server-advertised call quota and blocks callers just
// long enough to stay within it.
//
// The state starts at a conservative placeholder (10 calls per second) and is
// overwritten by whatever the server actually reports. It lives for one
// process run; the server's own window resets it between runs.
type RateLimit struct {
	limit      uint32
	remaining  uint32
	decay      time.Duration
	lastUpdate time.Time
	logger     *log.Logger
	now        func() time.Time
}

// NewRateLimit creates a RateLimit in its default state.
func NewRateLimit(logger *log.Logger) *RateLimit {
	return &RateLimit{
		limit:      10,
		remaining:  10,
		decay:      time.Second,
		lastUpdate: time.Now(),
		logger:     logger,
		now:        time.Now,
	}
}

// Wait blocks until the quota allows another call, then spends one slot.
//
// When the quota is spent, the caller sleeps until the decay window since the
// last update has elapsed and is then granted a single optimistic slot; the
// real count is unknown until the next response reports it.
func (r *RateLimit) Wait(ctx context.Context) error {
	if r.remaining == 0 {
		deadline := r.lastUpdate.Add(r.decay)
		if wait := deadline.Sub(r.now()); wait > 0 {
			r.logger.Debug("rate limit exhausted, waiting", "wait", wait)
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
		r.remaining = 1
		r.lastUpdate = r.now()
	}

	r.remaining--
	return nil
}

// Update refreshes the quota state from a response's headers.
//
// Each header independently overwrites its field; a missing or malformed
// header leaves the field unchanged and never fails the call that carried it.
func (r *RateLimit) Update(header http.Header) {
	r.lastUpdate = r.now()

	if v := header.Get(headerRateLimit); v != "" {
		if limit, err := strconv.ParseUint(v, 10, 32); err == nil {
			r.limit = uint32(limit)
		} else {
			r.logger.Warn("malformed rate limit header", "header", headerRateLimit, "value", v)
		}
	}

	if v := header.Get(headerRateRemaining); v != "" {
		if remaining, err := strconv.ParseUint(v, 10, 32); err == nil {
			r.remaining = uint32(remaining)
		} else {
			r.logger.Warn("malformed rate limit header", "header", headerRateRemaining, "value", v)
		}
	}

	if v := header.Get(headerRateDecay); v != "" {
		if seconds, err := strconv.ParseFloat(v, 64); err == nil && seconds > 0 {
			r.decay = time.Duration(seconds * float64(time.Second))
		} else {
			r.logger.Warn("malformed rate limit header", "header", headerRateDecay, "value", v)
		}
	}
}
