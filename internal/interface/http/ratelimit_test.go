package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClientLimiterRefills(t *testing.T) {
	now := time.Date(2025, 9, 23, 0, 0, 0, 0, time.UTC)
	limiter := newClientLimiter(60, 2, func() time.Time { return now })

	_, ok := limiter.take("a")
	require.True(t, ok)
	_, ok = limiter.take("a")
	require.True(t, ok)
	wait, ok := limiter.take("a")
	require.False(t, ok)
	require.Equal(t, time.Second, wait)

	_, ok = limiter.take("b")
	require.True(t, ok)

	now = now.Add(time.Second)
	_, ok = limiter.take("a")
	require.True(t, ok)
}

func TestClientLimiterSweepsIdleBuckets(t *testing.T) {
	now := time.Date(2025, 9, 23, 0, 0, 0, 0, time.UTC)
	limiter := newClientLimiter(60, 1, func() time.Time { return now })

	limiter.take("a")
	now = now.Add(idleBucketTTL + time.Minute)
	limiter.take("b")

	require.Len(t, limiter.buckets, 1)
	require.Contains(t, limiter.buckets, "b")
}
