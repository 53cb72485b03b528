// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

import (
	"context"
	"sync"
)

// AsyncGrip adapts a synchronous Grip to one which only deals in pending
// results. Writes are applied in the order Set was called and reads wait
// for the latest write to complete.
type AsyncGrip[T any] struct {
	subject Grip[T]

	mu   sync.Mutex
	last *Future[T]
}

// AsAsync returns an asynchronous view of g.
func AsAsync[T any](g Grip[T]) *AsyncGrip[T] {
	return &AsyncGrip[T]{subject: g}
}

// Value implements the [Grip] interface.
func (g *AsyncGrip[T]) Value() Result[T] {
	g.mu.Lock()
	last := g.last
	g.mu.Unlock()

	if last == nil {
		return Async(g.subject.Value().Future())
	}
	return Async(Then(last, func(T) Result[T] {
		return g.subject.Value()
	}))
}

// Set implements the [Grip] interface. The returned Result resolves
// once r has resolved and its value was written to the subject.
func (g *AsyncGrip[T]) Set(r Result[T]) Result[T] {
	in := r.Future()

	g.mu.Lock()
	defer g.mu.Unlock()

	prev := g.last
	g.last = Go(func() (T, error) {
		if prev != nil {
			// a failed earlier write is reported to its own caller
			prev.Await(context.Background())
		}
		v, err := in.Await(context.Background())
		if err != nil {
			return v, err
		}
		return g.subject.Set(Sync(v)).Await(context.Background())
	})
	return Async(g.last)
}

// Unwrap implements the [Unwrapper] interface.
func (g *AsyncGrip[T]) Unwrap() any {
	return g.subject
}
