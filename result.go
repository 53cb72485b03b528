// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

import (
	"context"
	"errors"
	"fmt"
)

// ErrPending is returned by [Result.Now] when the Result has not resolved yet.
var ErrPending = errors.New("grip: result is pending")

type resultKind uint8

const (
	kindEmpty resultKind = iota
	kindReady
	kindPending
)

// Result is what every Grip reads and writes. It is exactly one of:
//
//   - empty: the zero Result, meaning there is no value at all
//   - ready: a synchronous value or a synchronous failure
//   - pending: a [Future] which resolves later
//
// Combinators inspect the kind of a Result once per operation and
// pick the synchronous or asynchronous code path accordingly.
type Result[T any] struct {
	kind   resultKind
	value  T
	err    error
	future *Future[T]
}

// Empty returns a Result without a value.
func Empty[T any]() Result[T] {
	return Result[T]{}
}

// Sync returns a ready Result holding v.
func Sync[T any](v T) Result[T] {
	return Result[T]{kind: kindReady, value: v}
}

// Fail returns a ready Result holding a synchronous failure.
func Fail[T any](err error) Result[T] {
	return Result[T]{kind: kindReady, err: err}
}

// From returns Fail(err) if err is non-nil, otherwise Sync(v).
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Sync(v)
}

// Async returns a pending Result backed by f. A nil f yields an empty Result.
func Async[T any](f *Future[T]) Result[T] {
	if f == nil {
		return Empty[T]()
	}
	return Result[T]{kind: kindPending, future: f}
}

// IsEmpty reports whether r holds no value.
func (r Result[T]) IsEmpty() bool {
	return r.kind == kindEmpty
}

// IsAsync reports whether r is backed by a Future.
func (r Result[T]) IsAsync() bool {
	return r.kind == kindPending
}

// Err returns the synchronous failure of r, if any.
// Pending results always return nil.
func (r Result[T]) Err() error {
	return r.err
}

// Now returns the value of r without blocking. An empty Result yields the
// zero value of T and a pending Result yields [ErrPending].
func (r Result[T]) Now() (T, error) {
	if r.kind == kindPending {
		var zero T
		return zero, ErrPending
	}
	return r.value, r.err
}

// Future lifts r into a Future. Ready and empty results resolve immediately.
func (r Result[T]) Future() *Future[T] {
	switch r.kind {
	case kindPending:
		return r.future
	default:
		if r.err != nil {
			return Rejected[T](r.err)
		}
		return Resolved(r.value)
	}
}

// Await returns the value of r, blocking on pending results until
// they resolve or ctx is cancelled.
func (r Result[T]) Await(ctx context.Context) (T, error) {
	if r.kind == kindPending {
		return r.future.Await(ctx)
	}
	return r.value, r.err
}

// String implements the [fmt.Stringer] interface.
func (r Result[T]) String() string {
	switch r.kind {
	case kindPending:
		return "Async(...)"
	case kindReady:
		if r.err != nil {
			return fmt.Sprintf("Fail(%s)", r.err)
		}
		return fmt.Sprintf("Sync(%v)", r.value)
	default:
		return "Empty"
	}
}

// Bind chains f onto r. Ready values are passed to f immediately, so
// synchronous inputs stay synchronous, while pending values are passed
// once they resolve and the returned Result is pending as well. Failures
// skip f. An empty Result is treated as the zero value of A.
func Bind[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.kind == kindPending {
		return Async(Then(r.future, f))
	}
	if r.err != nil {
		return Fail[B](r.err)
	}
	return f(r.value)
}

// Map is like Bind but for functions which compute their result synchronously.
func Map[A, B any](r Result[A], f func(A) (B, error)) Result[B] {
	return Bind(r, func(a A) Result[B] {
		return From(f(a))
	})
}
