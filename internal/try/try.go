// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try converts panics raised by user supplied functions into errors.
package try

import (
	"errors"
	"fmt"
)

// PanicError is returned in place of a panic raised by a getter,
// setter or cast function executed on behalf of a future.
type PanicError struct {
	Value any
}

// Error implements the [builtin.error] interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e PanicError) Unwrap() error {
	err, ok := e.Value.(error)
	if !ok {
		return nil
	}
	return err
}

// Recover must be deferred. It stores any recovered panic into err,
// joining it with an error which may have already been set.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	perr := PanicError{
		Value: r,
	}
	if *err == nil {
		*err = perr
		return
	}
	*err = errors.Join(*err, perr)
}

// Call invokes f and returns its results, converting a panic into a PanicError.
func Call[T any](f func() (T, error)) (v T, err error) {
	defer Recover(&err)
	return f()
}
