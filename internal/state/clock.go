package state

import (
	"sync/atomic"
	"time"
)

// TokenClock hands out strictly increasing tokens seeded from wall time, so
// two snapshots taken within the same clock tick still get distinct names.
type TokenClock struct {
	last atomic.Uint64
	now  func() time.Time
}

func NewTokenClock(now func() time.Time) *TokenClock {
	if now == nil {
		now = time.Now
	}
	return &TokenClock{now: now}
}

func (c *TokenClock) Next() uint64 {
	for {
		last := c.last.Load()
		next := uint64(c.now().UnixNano())
		if next <= last {
			next = last + 1
		}
		if c.last.CompareAndSwap(last, next) {
			return next
		}
	}
}
