// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package store provides grips backed by key value stores.
package store

import (
	"fmt"

	"github.com/z5labs/grip"
)

// KV is a string keyed store of string values.
type KV interface {
	// Load returns the value stored under key. The returned bool is
	// false if there is no such key.
	Load(key string) (string, bool, error)
	Store(key, value string) error
	Delete(key string) error
}

// LoadError wraps failures returned from [KV.Load].
type LoadError struct {
	Key   string
	Cause error
}

// Error implements the error interface.
func (e LoadError) Error() string {
	return fmt.Sprintf("failed to load key %q: %s", e.Key, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e LoadError) Unwrap() error {
	return e.Cause
}

// StoreError wraps failures returned from [KV.Store] and [KV.Delete].
type StoreError struct {
	Key   string
	Cause error
}

// Error implements the error interface.
func (e StoreError) Error() string {
	return fmt.Sprintf("failed to store key %q: %s", e.Key, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e StoreError) Unwrap() error {
	return e.Cause
}

// Raw returns a Grip over the value stored under key. A missing key
// reads as an empty Result and writing an empty Result deletes the key.
func Raw(kv KV, key string) *grip.ManualGrip[string] {
	return grip.Manual(
		func() grip.Result[string] {
			v, ok, err := kv.Load(key)
			if err != nil {
				return grip.Fail[string](LoadError{Key: key, Cause: err})
			}
			if !ok {
				return grip.Empty[string]()
			}
			return grip.Sync(v)
		},
		func(r grip.Result[string]) grip.Result[string] {
			if r.IsEmpty() {
				if err := kv.Delete(key); err != nil {
					return grip.Fail[string](StoreError{Key: key, Cause: err})
				}
				return r
			}
			return grip.Map(r, func(v string) (string, error) {
				if err := kv.Store(key, v); err != nil {
					return v, StoreError{Key: key, Cause: err}
				}
				return v, nil
			})
		},
	)
}

// String is like [Raw] but a missing key reads as def.
func String(kv KV, key, def string) *grip.TransformGrip[string, string] {
	return grip.Transform(grip.Grip[string](Raw(kv, key)), grip.Casts[string, string]{
		In: func(r grip.Result[string]) grip.Result[string] {
			return r
		},
		Out: func(r grip.Result[string]) grip.Result[string] {
			if r.IsEmpty() {
				return grip.Sync(def)
			}
			return r
		},
	})
}
