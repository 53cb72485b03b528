// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

import (
	"slices"
	"sync"
)

// Observer is called with the newly written value and the value it replaced.
type Observer[T any] func(next, prev Result[T])

// Observable is a Grip which notifies observers of writes.
type Observable[T any] interface {
	Grip[T]

	AddObserver(Observer[T], ...ObserverOption) (remove func())
}

type observerOptions struct {
	initialValue bool
}

// ObserverOption configures a call to AddObserver.
type ObserverOption func(*observerOptions)

// ObserveInitialValue additionally calls the observer once with the current
// value and an empty previous value. The call happens on a separate goroutine,
// never before AddObserver has returned.
func ObserveInitialValue() ObserverOption {
	return func(oo *observerOptions) {
		oo.initialValue = true
	}
}

type registration[T any] struct {
	observer Observer[T]
}

// ObservableGrip adds change notification to a Grip.
type ObservableGrip[T any] struct {
	subject Grip[T]

	mu        sync.Mutex
	observers []*registration[T]
}

// Observe returns an observable version of g.
func Observe[T any](g Grip[T]) *ObservableGrip[T] {
	return &ObservableGrip[T]{subject: g}
}

// Value implements the [Grip] interface.
func (g *ObservableGrip[T]) Value() Result[T] {
	return g.subject.Value()
}

// Set implements the [Grip] interface. Observers are called synchronously,
// in registration order, after the underlying write. A synchronous failure
// of the write is returned without notifying anyone.
func (g *ObservableGrip[T]) Set(next Result[T]) Result[T] {
	prev := g.subject.Value()
	res := g.subject.Set(next)
	if res.Err() != nil {
		return res
	}

	g.mu.Lock()
	observers := slices.Clone(g.observers)
	g.mu.Unlock()

	for _, reg := range observers {
		reg.observer(next, prev)
	}
	return res
}

// AddObserver registers o and returns a func which unregisters it again.
// Registering the same func twice results in two independent registrations.
func (g *ObservableGrip[T]) AddObserver(o Observer[T], opts ...ObserverOption) (remove func()) {
	oo := &observerOptions{}
	for _, opt := range opts {
		opt(oo)
	}

	reg := &registration[T]{observer: o}
	g.mu.Lock()
	g.observers = append(g.observers, reg)
	g.mu.Unlock()

	if oo.initialValue {
		go func() {
			o(g.subject.Value(), Empty[T]())
		}()
	}

	return func() {
		g.remove(reg)
	}
}

// Notify implements the [Notifier] interface.
func (g *ObservableGrip[T]) Notify(f func()) (remove func()) {
	return g.AddObserver(func(_, _ Result[T]) {
		f()
	})
}

// Unwrap implements the [Unwrapper] interface.
func (g *ObservableGrip[T]) Unwrap() any {
	return g.subject
}

func (g *ObservableGrip[T]) remove(reg *registration[T]) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := slices.Index(g.observers, reg)
	if i < 0 {
		return
	}
	g.observers = slices.Delete(g.observers, i, i+1)
}
