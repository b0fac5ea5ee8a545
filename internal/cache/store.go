package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a fetched collection counts as fresh.
const DefaultTTL = 5 * time.Second

// refetchTimeout bounds background revalidation fetches, which are
// detached from any caller's context.
const refetchTimeout = 30 * time.Second

// Store caches one value type keyed by query parameters.
//
// Freshness rules: a fresh hit is served directly. A hit older than the
// TTL is served immediately while a background refetch runs
// (stale-while-revalidate). An entry invalidated by a mutation is treated
// as a miss, so the next access refetches synchronously. Misses for the
// same key coalesce into a single fetch.
type Store[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[Key]*entry[V]
	group   singleflight.Group
}

type entry[V any] struct {
	value     V
	fetchedAt time.Time
	stale     bool // set by Invalidate; forces a synchronous refetch
}

// NewStore creates a store with the given freshness TTL.
func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[Key]*entry[V]),
	}
}

// Query returns the cached value for key, fetching it if needed.
// Fetch errors propagate to the caller and leave other entries untouched.
func (s *Store[V]) Query(ctx context.Context, key Key, fetch func(ctx context.Context) (V, error)) (V, error) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if ok && !e.stale {
		value := e.value
		age := s.now().Sub(e.fetchedAt)
		s.mu.Unlock()
		if age > s.ttl {
			s.revalidate(key, fetch)
		}
		return value, nil
	}
	s.mu.Unlock()

	return s.fetchShared(ctx, key, fetch)
}

// fetchShared runs fetch once per key no matter how many concurrent
// callers arrive; all observers receive the same resolved value.
func (s *Store[V]) fetchShared(ctx context.Context, key Key, fetch func(ctx context.Context) (V, error)) (V, error) {
	v, err, _ := s.group.Do(key.String(), func() (any, error) {
		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.entries[key] = &entry[V]{value: value, fetchedAt: s.now()}
		s.mu.Unlock()
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// revalidate refreshes an aged entry in the background. Errors are
// discarded; the entry keeps serving its last good value.
func (s *Store[V]) revalidate(key Key, fetch func(ctx context.Context) (V, error)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refetchTimeout)
		defer cancel()
		_, _ = s.fetchShared(ctx, key, fetch)
	}()
}

// Invalidate marks every entry matching the pattern stale. The refetch is
// lazy: nothing happens until the key is queried again (eventual, not
// strong, consistency).
func (s *Store[V]) Invalidate(p Pattern) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		if p.Matches(k) {
			e.stale = true
		}
	}
}

// Len reports the number of stored entries, fresh or stale.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
