package history

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordMovesRepeatToFront(t *testing.T) {
	tr := NewTracker(DefaultCapacity)
	require.True(t, tr.Record("1990-01-01"))
	require.True(t, tr.Record("1991-04-21"))
	require.True(t, tr.Record("1990-01-01"))

	require.Equal(t, []string{"1990-01-01", "1991-04-21"}, tr.List())
}

func TestRecordEvictsOldest(t *testing.T) {
	tr := NewTracker(DefaultCapacity)
	for day := 1; day <= 8; day++ {
		tr.Record(fmt.Sprintf("2000-01-%02d", day))
	}
	require.Equal(t, []string{
		"2000-01-08", "2000-01-07", "2000-01-06",
		"2000-01-05", "2000-01-04", "2000-01-03",
	}, tr.List())
}

func TestRecordIgnoresInvalidInput(t *testing.T) {
	tr := NewTracker(3)
	require.False(t, tr.Record("yesterday"))
	require.False(t, tr.Record("2023-02-30"))
	require.Empty(t, tr.List())
}

func TestRecordStoresCanonicalForm(t *testing.T) {
	tr := NewTracker(3)
	tr.Record("1990-1-1")
	tr.Record("1990/01/01")
	require.Equal(t, []string{"1990-01-01"}, tr.List())
}

func TestListReturnsCopy(t *testing.T) {
	tr := NewTracker(2)
	tr.Record("2001-01-01")
	snapshot := tr.List()
	snapshot[0] = "mutated"
	require.Equal(t, []string{"2001-01-01"}, tr.List())
}

func TestNonPositiveCapacityFallsBack(t *testing.T) {
	require.Equal(t, DefaultCapacity, NewTracker(0).Capacity())
	require.Equal(t, DefaultCapacity, NewTracker(-4).Capacity())
}

func TestConcurrentRecordKeepsInvariant(t *testing.T) {
	tr := NewTracker(DefaultCapacity)
	var wg sync.WaitGroup
	for worker := 0; worker < 16; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				tr.Record(fmt.Sprintf("2010-01-%02d", (worker+i)%10+1))
				_ = tr.List()
			}
		}(worker)
	}
	wg.Wait()

	list := tr.List()
	require.Len(t, list, DefaultCapacity)
	seen := make(map[string]struct{}, len(list))
	for _, v := range list {
		_, dup := seen[v]
		require.False(t, dup, "duplicate entry %s", v)
		seen[v] = struct{}{}
	}
}
