package maya

import (
	"hash/fnv"
	"math/rand"
)

// newStream returns a private generator. Nothing in this package touches the
// global math/rand source.
func newStream(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// sample draws k distinct items without disturbing items.
func sample[T any](r *rand.Rand, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	pool := append([]T(nil), items...)
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func choice[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// keySeed is a stable 32-bit FNV-1a offset for a string key.
func keySeed(key string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int64(h.Sum32())
}
