// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachingGrip memoizes the value of its subject until it becomes stale.
// Pending values are memoized as the Future itself, so repeated reads
// return the very same Future.
type CachingGrip[T any] struct {
	subject Grip[T]
	flight  singleflight.Group

	mu     sync.Mutex
	stale  bool
	gen    uint64
	cached Result[T]

	unsubscribe func()
}

// Cache returns a caching Grip over subject. Writes through the returned
// Grip mark it stale. If subject is observable, directly or through any of
// the grips it wraps, writes to it also mark the cache stale. Otherwise,
// Expire must be called after writing to subject by other means.
func Cache[T any](subject Grip[T]) *CachingGrip[T] {
	g := &CachingGrip[T]{
		subject: subject,
		stale:   true,
	}
	if n, ok := NotifierOf(subject); ok {
		g.unsubscribe = n.Notify(g.Expire)
	}
	return g
}

// Value implements the [Grip] interface.
func (g *CachingGrip[T]) Value() Result[T] {
	g.mu.Lock()
	if !g.stale {
		defer g.mu.Unlock()
		return g.cached
	}
	gen := g.gen
	g.mu.Unlock()

	// concurrent readers of the same generation share one read of the
	// subject, a read issued after a write never joins an earlier one
	v, _, _ := g.flight.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		r := g.subject.Value()

		g.mu.Lock()
		defer g.mu.Unlock()
		if g.gen == gen {
			g.cached = r
			g.stale = false
		}
		return r, nil
	})
	return v.(Result[T])
}

// Set implements the [Grip] interface.
func (g *CachingGrip[T]) Set(r Result[T]) Result[T] {
	g.Expire()
	res := g.subject.Set(r)

	// a refresh may have raced the write
	g.Expire()
	return res
}

// Expire marks the cached value as stale, forcing the next read to refetch.
func (g *CachingGrip[T]) Expire() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stale = true
	g.gen++
}

// Close stops listening for writes on an observable subject.
func (g *CachingGrip[T]) Close() error {
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
	return nil
}
