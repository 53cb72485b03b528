// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

// ManualGrip is a Grip built from caller supplied getter and setter
// functions. Every derived grip in this package could be expressed with it.
type ManualGrip[T any] struct {
	get func() Result[T]
	set func(Result[T]) Result[T]
}

// Manual returns a Grip which calls get on read and set on write.
func Manual[T any](get func() Result[T], set func(Result[T]) Result[T]) *ManualGrip[T] {
	return &ManualGrip[T]{
		get: get,
		set: set,
	}
}

// ManualSync returns a Grip over plain synchronous functions. Writing a
// pending Result calls set once the Result resolves.
func ManualSync[T any](get func() (T, error), set func(T) (T, error)) *ManualGrip[T] {
	return Manual(
		func() Result[T] {
			return From(get())
		},
		func(r Result[T]) Result[T] {
			return Map(r, set)
		},
	)
}

// ManualAsync returns a Grip over future based functions. Writing a
// ready Result hands set an already resolved Future.
func ManualAsync[T any](get func() *Future[T], set func(*Future[T]) *Future[T]) *ManualGrip[T] {
	return Manual(
		func() Result[T] {
			return Async(get())
		},
		func(r Result[T]) Result[T] {
			return Async(set(r.Future()))
		},
	)
}

// ManualWithContext is like Manual but closes over c, which is handed
// to get and set verbatim.
func ManualWithContext[T, C any](c C, get func(C) Result[T], set func(C, Result[T]) Result[T]) *ManualGrip[T] {
	return Manual(
		func() Result[T] {
			return get(c)
		},
		func(r Result[T]) Result[T] {
			return set(c, r)
		},
	)
}

// Value implements the [Grip] interface.
func (g *ManualGrip[T]) Value() Result[T] {
	return g.get()
}

// Set implements the [Grip] interface.
func (g *ManualGrip[T]) Set(r Result[T]) Result[T] {
	return g.set(r)
}
