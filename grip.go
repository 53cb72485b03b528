// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

import "context"

// Grip is a read/write handle onto some piece of state.
type Grip[T any] interface {
	// Value returns the current state.
	Value() Result[T]

	// Set writes the state and returns the accepted value,
	// which may be chained on by the caller.
	Set(Result[T]) Result[T]
}

// Unwrapper is implemented by grips which wrap another grip and
// inherit its capabilities, e.g. being observable.
type Unwrapper interface {
	Unwrap() any
}

// Notifier is the type independent change signal of an observable grip.
type Notifier interface {
	// Notify registers f to be called after every write and
	// returns a func which unregisters it.
	Notify(f func()) (remove func())
}

// AsObservable finds the first Observable in the wrapping chain of g,
// starting with g itself. Only grips of the same value type are considered.
func AsObservable[T any](g Grip[T]) (Observable[T], bool) {
	var cur any = g
	for cur != nil {
		if o, ok := cur.(Observable[T]); ok {
			return o, true
		}
		u, ok := cur.(Unwrapper)
		if !ok {
			return nil, false
		}
		cur = u.Unwrap()
	}
	return nil, false
}

// NotifierOf finds the first Notifier in the wrapping chain of g.
func NotifierOf(g any) (Notifier, bool) {
	for g != nil {
		if n, ok := g.(Notifier); ok {
			return n, true
		}
		u, ok := g.(Unwrapper)
		if !ok {
			return nil, false
		}
		g = u.Unwrap()
	}
	return nil, false
}

// ContextGrip is implemented by grips which attribute their operations
// to a context, e.g. to trace or log them. Value and Set behave like
// ValueContext and SetContext with a context chosen by the grip.
type ContextGrip[T any] interface {
	Grip[T]

	ValueContext(ctx context.Context) Result[T]
	SetContext(ctx context.Context, r Result[T]) Result[T]
}

// ValueContext reads g on behalf of ctx if g is a [ContextGrip].
// Other grips are read with Value.
func ValueContext[T any](ctx context.Context, g Grip[T]) Result[T] {
	if cg, ok := g.(ContextGrip[T]); ok {
		return cg.ValueContext(ctx)
	}
	return g.Value()
}

// SetContext writes r to g on behalf of ctx if g is a [ContextGrip].
// Other grips are written with Set.
func SetContext[T any](ctx context.Context, g Grip[T], r Result[T]) Result[T] {
	if cg, ok := g.(ContextGrip[T]); ok {
		return cg.SetContext(ctx, r)
	}
	return g.Set(r)
}

// Get reads g on behalf of ctx and waits for its value.
func Get[T any](ctx context.Context, g Grip[T]) (T, error) {
	return ValueContext(ctx, g).Await(ctx)
}

// Put writes v to g on behalf of ctx and waits for the write to be accepted.
func Put[T any](ctx context.Context, g Grip[T], v T) (T, error) {
	return SetContext(ctx, g, Sync(v)).Await(ctx)
}
