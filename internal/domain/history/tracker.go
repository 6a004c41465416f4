package history

import (
	"sync"
	"sync/atomic"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
)

// DefaultCapacity is the number of birth dates kept per tracker.
const DefaultCapacity = 6

// Tracker keeps the most recently queried birth dates, newest first, without
// duplicates. Writers are serialized; readers load a published snapshot and
// never block.
type Tracker struct {
	mu       sync.Mutex
	capacity int
	entries  atomic.Pointer[[]string]
}

// NewTracker builds an empty tracker. Non-positive capacities fall back to
// DefaultCapacity.
func NewTracker(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	t := &Tracker{capacity: capacity}
	empty := []string{}
	t.entries.Store(&empty)
	return t
}

// Record moves value to the front of the list. Values that are not valid
// calendar dates are ignored and false is returned.
func (t *Tracker) Record(value string) bool {
	date, err := caldate.Parse(value)
	if err != nil {
		return false
	}
	key := date.String()

	t.mu.Lock()
	defer t.mu.Unlock()

	current := *t.entries.Load()
	next := make([]string, 0, t.capacity)
	next = append(next, key)
	for _, existing := range current {
		if len(next) == t.capacity {
			break
		}
		if existing == key {
			continue
		}
		next = append(next, existing)
	}
	t.entries.Store(&next)
	return true
}

// List returns a copy of the tracked dates, most recent first.
func (t *Tracker) List() []string {
	current := *t.entries.Load()
	out := make([]string, len(current))
	copy(out, current)
	return out
}

// Capacity reports the maximum number of entries kept.
func (t *Tracker) Capacity() int {
	return t.capacity
}
