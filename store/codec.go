// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package store

import (
	"encoding/json"
	"fmt"

	"github.com/z5labs/grip"

	"gopkg.in/yaml.v3"
)

// Codec converts values to and from their stored representation.
type Codec[T any] interface {
	Marshal(T) ([]byte, error)
	Unmarshal([]byte, *T) error
}

// EncodeError is returned when a value could not be marshalled.
type EncodeError struct {
	Key   string
	Cause error
}

// Error implements the error interface.
func (e EncodeError) Error() string {
	return fmt.Sprintf("failed to encode value for key %q: %s", e.Key, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e EncodeError) Unwrap() error {
	return e.Cause
}

// DecodeError is returned when a stored value could not be unmarshalled.
type DecodeError struct {
	Key   string
	Cause error
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode value for key %q: %s", e.Key, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e DecodeError) Unwrap() error {
	return e.Cause
}

// Encoded returns a Grip over the value stored under key, converted with c.
// A missing key reads as def.
func Encoded[T any](kv KV, key string, def T, c Codec[T]) *grip.TransformGrip[string, T] {
	return grip.Transform(grip.Grip[string](Raw(kv, key)), grip.Casts[string, T]{
		In: func(r grip.Result[T]) grip.Result[string] {
			if r.IsEmpty() {
				return grip.Empty[string]()
			}
			return grip.Map(r, func(v T) (string, error) {
				b, err := c.Marshal(v)
				if err != nil {
					return "", EncodeError{Key: key, Cause: err}
				}
				return string(b), nil
			})
		},
		Out: func(r grip.Result[string]) grip.Result[T] {
			if r.IsEmpty() {
				return grip.Sync(def)
			}
			return grip.Map(r, func(s string) (T, error) {
				var v T
				if err := c.Unmarshal([]byte(s), &v); err != nil {
					return v, DecodeError{Key: key, Cause: err}
				}
				return v, nil
			})
		},
	})
}

type jsonCodec[T any] struct{}

func (jsonCodec[T]) Marshal(v T) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec[T]) Unmarshal(b []byte, v *T) error { return json.Unmarshal(b, v) }

// JSON stores values as JSON documents.
func JSON[T any](kv KV, key string, def T) *grip.TransformGrip[string, T] {
	return Encoded[T](kv, key, def, jsonCodec[T]{})
}

type yamlCodec[T any] struct{}

func (yamlCodec[T]) Marshal(v T) ([]byte, error) { return yaml.Marshal(v) }

func (yamlCodec[T]) Unmarshal(b []byte, v *T) error { return yaml.Unmarshal(b, v) }

// YAML stores values as YAML documents.
func YAML[T any](kv KV, key string, def T) *grip.TransformGrip[string, T] {
	return Encoded[T](kv, key, def, yamlCodec[T]{})
}
