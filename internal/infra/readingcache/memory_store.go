package readingcache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
)

// DefaultCapacity bounds the memory store when no capacity is configured.
const DefaultCapacity = 1024

const sweepInterval = time.Minute

type entry struct {
	date      caldate.Date
	reading   maya.DayReading
	expiresAt time.Time
}

// MemoryStore keeps day readings in process memory. It holds at most
// capacity entries and evicts the least recently used one beyond that.
// Readings are copied on the way in and out.
type MemoryStore struct {
	mu        sync.Mutex
	capacity  int
	entries   map[caldate.Date]*list.Element
	order     *list.List
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryStore constructs an empty store; capacity <= 0 means
// DefaultCapacity.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		capacity: capacity,
		entries:  make(map[caldate.Date]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
}

// Get implements maya.ReadingCache.
func (s *MemoryStore) Get(_ context.Context, date caldate.Date) (maya.DayReading, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.entries[date]
	if !ok {
		return maya.DayReading{}, false, nil
	}
	e := el.Value.(*entry)
	if s.expired(e.expiresAt, s.now()) {
		s.remove(el)
		return maya.DayReading{}, false, nil
	}
	s.order.MoveToFront(el)
	return e.reading.Clone(), true, nil
}

// Put stores reading; a non-positive ttl never expires.
func (s *MemoryStore) Put(_ context.Context, reading maya.DayReading, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.lastSweep.IsZero() || now.Sub(s.lastSweep) >= sweepInterval {
		s.sweep(now)
	}

	exp := time.Time{}
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	if el, ok := s.entries[reading.Date]; ok {
		e := el.Value.(*entry)
		e.reading = reading.Clone()
		e.expiresAt = exp
		s.order.MoveToFront(el)
		return nil
	}

	s.entries[reading.Date] = s.order.PushFront(&entry{date: reading.Date, reading: reading.Clone(), expiresAt: exp})
	for s.order.Len() > s.capacity {
		s.remove(s.order.Back())
	}
	return nil
}

// Len reports the number of stored entries, expired ones not yet swept
// included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

func (s *MemoryStore) sweep(now time.Time) {
	for el := s.order.Back(); el != nil; {
		prev := el.Prev()
		if s.expired(el.Value.(*entry).expiresAt, now) {
			s.remove(el)
		}
		el = prev
	}
	s.lastSweep = now
}

func (s *MemoryStore) remove(el *list.Element) {
	s.order.Remove(el)
	delete(s.entries, el.Value.(*entry).date)
}

func (s *MemoryStore) expired(ts, now time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(now)
}

var _ maya.ReadingCache = (*MemoryStore)(nil)
