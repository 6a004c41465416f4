package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheUsageSnapshot(t *testing.T) {
	var u CacheUsage
	require.True(t, u.Snapshot().IsZero())
	require.Zero(t, u.Snapshot().HitRatio())

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%3 == 0 {
				u.Miss()
				return
			}
			u.Hit()
		}(i)
	}
	wg.Wait()
	u.Failure()

	snap := u.Snapshot()
	require.Equal(t, CacheSnapshot{Hits: 20, Misses: 10, Errors: 1}, snap)
	require.InDelta(t, 2.0/3.0, snap.HitRatio(), 1e-9)
}
