package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is how long a fetched value stays served without a re-fetch
// even when nothing invalidated it.
const DefaultTTL = 5 * time.Minute

// Fetcher loads the authoritative value for a key from the content API's
// backing store. Errors are returned to the reader and never cached.
type Fetcher func(ctx context.Context, key Key) ([]byte, error)

// entry is one cached value. A stale entry is still present but the next
// Read for its key re-fetches instead of serving it.
type entry struct {
	value   []byte
	fetched time.Time
	stale   bool
}

// Syncer is a keyed read-through cache. It holds read-only, time-bounded
// copies of store state and has no lifecycle authority of its own: it is
// invalidated, never authoritative. There is no optimistic mutation —
// after a write the affected keys go stale and the next read re-fetches.
type Syncer struct {
	mu      sync.RWMutex
	entries map[Key]*entry
	fetch   Fetcher
	ttl     time.Duration
}

// NewSyncer creates a Syncer over the given fetch function. A zero ttl
// falls back to DefaultTTL.
func NewSyncer(fetch Fetcher, ttl time.Duration) *Syncer {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Syncer{
		entries: make(map[Key]*entry),
		fetch:   fetch,
		ttl:     ttl,
	}
}

// Read returns the cached value for key, fetching it first if the key is
// absent, stale, or older than the TTL. Concurrent reads after racing
// mutations follow last-fetch-wins; there is no ordering guarantee beyond
// fetch completion order.
func (s *Syncer) Read(ctx context.Context, key Key) ([]byte, error) {
	s.mu.RLock()
	if e, ok := s.entries[key]; ok && s.fresh(e) {
		value := e.value
		s.mu.RUnlock()
		return value, nil
	}
	s.mu.RUnlock()

	value, err := s.fetch(ctx, key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[key] = &entry{value: value, fetched: time.Now()}
	s.mu.Unlock()
	return value, nil
}

// Invalidate marks the given keys stale. Missing keys are ignored, so
// callers can invalidate from the static mutation table without checking
// what was ever fetched.
func (s *Syncer) Invalidate(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		if e, ok := s.entries[key]; ok {
			e.stale = true
		}
	}
}

func (s *Syncer) fresh(e *entry) bool {
	return !e.stale && time.Since(e.fetched) < s.ttl
}
