package readingcache

import (
	"context"
	"time"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
	"github.com/yanqian/cosmic-rhythm/pkg/metrics"
)

// Instrumented records hit, miss and error counts for another cache.
type Instrumented struct {
	next  maya.ReadingCache
	usage *metrics.CacheUsage
}

func NewInstrumented(next maya.ReadingCache, usage *metrics.CacheUsage) *Instrumented {
	return &Instrumented{next: next, usage: usage}
}

func (c *Instrumented) Get(ctx context.Context, date caldate.Date) (maya.DayReading, bool, error) {
	reading, ok, err := c.next.Get(ctx, date)
	switch {
	case err != nil:
		c.usage.Failure()
	case ok:
		c.usage.Hit()
	default:
		c.usage.Miss()
	}
	return reading, ok, err
}

func (c *Instrumented) Put(ctx context.Context, reading maya.DayReading, ttl time.Duration) error {
	err := c.next.Put(ctx, reading, ttl)
	if err != nil {
		c.usage.Failure()
	}
	return err
}
