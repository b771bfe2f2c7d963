// Package cache keeps fetched collections in memory with a staleness window.
// Stale entries are still served, marked as stale, so the caller can show
// them while it refetches in the background.
package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// FetchFunc loads the value for a key from the origin.
type FetchFunc[T any] func(ctx context.Context) (T, error)

type entry[T any] struct {
	value     T
	fetchedAt time.Time
}

type Result[T any] struct {
	Value     T
	FetchedAt time.Time
	Stale     bool
}

type Stats struct {
	Hits      int64
	StaleHits int64
	Misses    int64
	Fetches   int64
	Failures  int64
}

// Store is a keyed TTL cache. Concurrent fetches for the same key share one
// origin call, and a failed fetch never replaces data already cached.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	ttl     time.Duration
	now     func() time.Time
	group   singleflight.Group

	hits      atomic.Int64
	staleHits atomic.Int64
	misses    atomic.Int64
	fetches   atomic.Int64
	failures  atomic.Int64
}

func NewStore[T any](ttl time.Duration) *Store[T] {
	return &Store[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get serves a cached value when there is one, fresh or stale, and only
// calls fetch on a miss.
func (s *Store[T]) Get(ctx context.Context, key string, fetch FetchFunc[T]) (Result[T], error) {
	if res, ok := s.Peek(key); ok {
		if res.Stale {
			s.staleHits.Add(1)
		} else {
			s.hits.Add(1)
		}
		return res, nil
	}

	s.misses.Add(1)
	return s.Refresh(ctx, key, fetch)
}

// Refresh always goes to the origin and stores the result on success.
func (s *Store[T]) Refresh(ctx context.Context, key string, fetch FetchFunc[T]) (Result[T], error) {
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		s.fetches.Add(1)
		value, err := fetch(ctx)
		if err != nil {
			s.failures.Add(1)
			return nil, err
		}

		e := entry[T]{value: value, fetchedAt: s.now()}
		s.mu.Lock()
		s.entries[key] = e
		s.mu.Unlock()
		return e, nil
	})
	if err != nil {
		return Result[T]{}, err
	}

	e := v.(entry[T])
	return Result[T]{Value: e.value, FetchedAt: e.fetchedAt}, nil
}

// Peek reads the cache without fetching or touching the counters.
func (s *Store[T]) Peek(key string) (Result[T], bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return Result[T]{}, false
	}

	return Result[T]{
		Value:     e.value,
		FetchedAt: e.fetchedAt,
		Stale:     s.now().Sub(e.fetchedAt) >= s.ttl,
	}, true
}

func (s *Store[T]) Invalidate(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store[T]) Stats() Stats {
	return Stats{
		Hits:      s.hits.Load(),
		StaleHits: s.staleHits.Load(),
		Misses:    s.misses.Load(),
		Fetches:   s.fetches.Load(),
		Failures:  s.failures.Load(),
	}
}
