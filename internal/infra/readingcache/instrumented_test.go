package readingcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
	"github.com/yanqian/cosmic-rhythm/pkg/metrics"
)

type failingCache struct{}

func (failingCache) Get(context.Context, caldate.Date) (maya.DayReading, bool, error) {
	return maya.DayReading{}, false, errors.New("down")
}

func (failingCache) Put(context.Context, maya.DayReading, time.Duration) error {
	return errors.New("down")
}

func TestInstrumentedCountsLookups(t *testing.T) {
	usage := &metrics.CacheUsage{}
	cache := NewInstrumented(NewMemoryStore(0), usage)
	ctx := context.Background()
	reading := sampleReading(t, "2025-09-23")

	_, ok, err := cache.Get(ctx, reading.Date)
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, cache.Put(ctx, reading, time.Hour))
	_, ok, err = cache.Get(ctx, reading.Date)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, metrics.CacheSnapshot{Hits: 1, Misses: 1}, usage.Snapshot())
}

func TestInstrumentedCountsErrors(t *testing.T) {
	usage := &metrics.CacheUsage{}
	cache := NewInstrumented(failingCache{}, usage)
	ctx := context.Background()

	_, _, err := cache.Get(ctx, caldate.MustParse("2025-09-23"))
	require.Error(t, err)
	require.Error(t, cache.Put(ctx, maya.DayReading{}, time.Hour))
	require.Equal(t, int64(2), usage.Snapshot().Errors)
}
