// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

import (
	"fmt"
	"sync"
)

// ValueGrip is an in-memory Grip, a lot like a plain variable.
// It stores whatever Result it is given, pending ones included.
type ValueGrip[T any] struct {
	mu sync.RWMutex
	r  Result[T]
}

// InMemory returns a Grip holding v.
func InMemory[T any](v T) *ValueGrip[T] {
	return InMemoryResult(Sync(v))
}

// InMemoryResult returns a Grip holding r.
func InMemoryResult[T any](r Result[T]) *ValueGrip[T] {
	return &ValueGrip[T]{r: r}
}

// Value implements the [Grip] interface.
func (g *ValueGrip[T]) Value() Result[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.r
}

// Set implements the [Grip] interface.
func (g *ValueGrip[T]) Set(r Result[T]) Result[T] {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.r = r
	return r
}

// String implements the [fmt.Stringer] interface.
func (g *ValueGrip[T]) String() string {
	return fmt.Sprintf("ValueGrip(%s)", g.Value())
}
