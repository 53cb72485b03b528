// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

// ReadOnlyGrip ignores writes. Writes made directly on the
// wrapped grip are still visible through it.
type ReadOnlyGrip[T any] struct {
	subject Grip[T]
}

// ReadOnly returns a Grip whose Set does nothing.
func ReadOnly[T any](g Grip[T]) *ReadOnlyGrip[T] {
	return &ReadOnlyGrip[T]{subject: g}
}

// Value implements the [Grip] interface.
func (g *ReadOnlyGrip[T]) Value() Result[T] {
	return g.subject.Value()
}

// Set implements the [Grip] interface. It returns r unchanged.
func (g *ReadOnlyGrip[T]) Set(r Result[T]) Result[T] {
	return r
}

// Unwrap implements the [Unwrapper] interface. An observable subject is
// exposed through a view which keeps observing but ignores writes.
func (g *ReadOnlyGrip[T]) Unwrap() any {
	if obs, ok := AsObservable(g.subject); ok {
		return readOnlyObservable[T]{Observable: obs}
	}
	return g.subject
}

type readOnlyObservable[T any] struct {
	Observable[T]
}

func (o readOnlyObservable[T]) Set(r Result[T]) Result[T] {
	return r
}

func (o readOnlyObservable[T]) Notify(f func()) (remove func()) {
	return o.AddObserver(func(_, _ Result[T]) {
		f()
	})
}
