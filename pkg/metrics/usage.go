package metrics

import "sync/atomic"

// CacheUsage counts lookups against a cache. The zero value is ready to use.
type CacheUsage struct {
	hits   atomic.Int64
	misses atomic.Int64
	errors atomic.Int64
}

// CacheSnapshot is a point-in-time copy of CacheUsage.
type CacheSnapshot struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Errors int64 `json:"errors,omitempty"`
}

func (u *CacheUsage) Hit()     { u.hits.Add(1) }
func (u *CacheUsage) Miss()    { u.misses.Add(1) }
func (u *CacheUsage) Failure() { u.errors.Add(1) }

// Snapshot reads the current counters.
func (u *CacheUsage) Snapshot() CacheSnapshot {
	return CacheSnapshot{
		Hits:   u.hits.Load(),
		Misses: u.misses.Load(),
		Errors: u.errors.Load(),
	}
}

// IsZero reports whether no lookups were recorded.
func (s CacheSnapshot) IsZero() bool {
	return s.Hits == 0 && s.Misses == 0 && s.Errors == 0
}

// HitRatio is hits over successful lookups, 0 when there were none.
func (s CacheSnapshot) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
