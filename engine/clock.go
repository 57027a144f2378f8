package engine

import (
	"isolation/searcher"
	"time"
)

// Countdown starts a per-move timer. The returned clock goes negative once
// the limit has passed.
func Countdown(limit time.Duration) searcher.Clock {
	start := time.Now()
	return func() time.Duration {
		return limit - time.Since(start)
	}
}
