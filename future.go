// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

import (
	"context"
	"sync"

	"github.com/z5labs/grip/internal/try"
)

// PanicError is the rejection reason of a Future whose work panicked.
type PanicError = try.PanicError

// Future is a value which becomes available at some later point in time.
// A Future resolves exactly once, either to a value or to an error.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

// NewPromise returns a pending Future along with the function which resolves it.
// Only the first call to resolve has any effect.
func NewPromise[T any]() (*Future[T], func(T, error)) {
	f := &Future[T]{
		done: make(chan struct{}),
	}
	return f, f.resolve
}

// Go runs f on a new goroutine and returns a Future of its result.
// A panic in f rejects the Future with a [PanicError].
func Go[T any](f func() (T, error)) *Future[T] {
	fut, resolve := NewPromise[T]()
	go func() {
		resolve(try.Call(f))
	}()
	return fut
}

// Resolved returns an already fulfilled Future.
func Resolved[T any](v T) *Future[T] {
	fut, resolve := NewPromise[T]()
	resolve(v, nil)
	return fut
}

// Rejected returns an already rejected Future.
func Rejected[T any](err error) *Future[T] {
	fut, resolve := NewPromise[T]()
	var zero T
	resolve(zero, err)
	return fut
}

// Then returns a Future which resolves to the Result of applying f
// to the value of fut, once fut has been fulfilled. A rejection of fut
// skips f and rejects the returned Future with the same error.
func Then[A, B any](fut *Future[A], f func(A) Result[B]) *Future[B] {
	return Go(func() (B, error) {
		a, err := fut.Await(context.Background())
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a).Await(context.Background())
	})
}

func (f *Future[T]) resolve(v T, err error) {
	f.once.Do(func() {
		f.value = v
		f.err = err
		close(f.done)
	})
}

// Done returns a channel which is closed once the Future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the Future resolves or ctx is cancelled. Cancelling
// ctx only stops the wait, the work backing the Future keeps going.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case <-f.done:
		return f.value, f.err
	}
}

// Result wraps the Future in a pending Result.
func (f *Future[T]) Result() Result[T] {
	return Async(f)
}
