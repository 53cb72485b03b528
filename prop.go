// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

import (
	"fmt"
	"maps"
	"slices"
)

// IndexError is returned when a slice index is out of range.
type IndexError struct {
	Index int
	Len   int
}

// Error implements the [builtin.error] interface.
func (e IndexError) Error() string {
	return fmt.Sprintf("index %d out of range with length %d", e.Index, e.Len)
}

// NilTargetError is returned when writing through a Grip onto a part
// of a nil map or a nil struct pointer.
type NilTargetError struct {
	Type string
}

// Error implements the [builtin.error] interface.
func (e NilTargetError) Error() string {
	return fmt.Sprintf("cannot access part of nil %s", e.Type)
}

// MapKey returns a func which produces a Grip onto key of a map. Writes
// mutate that very map, so it is meant for maps owned by someone else,
// e.g. the cached value of another grip. A missing key reads as empty
// and writing an empty Result deletes the key. Writing a value to a
// nil map fails with a [NilTargetError].
func MapKey[K comparable, V any](key K) func(map[K]V) Grip[V] {
	return func(m map[K]V) Grip[V] {
		return Manual(
			func() Result[V] {
				v, ok := m[key]
				if !ok {
					return Empty[V]()
				}
				return Sync(v)
			},
			func(r Result[V]) Result[V] {
				if r.IsEmpty() {
					delete(m, key)
					return r
				}
				return Map(r, func(v V) (V, error) {
					if m == nil {
						return v, NilTargetError{Type: fmt.Sprintf("%T", m)}
					}
					m[key] = v
					return v, nil
				})
			},
		)
	}
}

// SliceIndex returns a func which produces a Grip onto index i of a slice.
// Writes mutate the backing array of that slice.
func SliceIndex[V any](i int) func([]V) Grip[V] {
	return func(s []V) Grip[V] {
		return Manual(
			func() Result[V] {
				if i < 0 || i >= len(s) {
					return Fail[V](IndexError{Index: i, Len: len(s)})
				}
				return Sync(s[i])
			},
			func(r Result[V]) Result[V] {
				return Map(r, func(v V) (V, error) {
					if i < 0 || i >= len(s) {
						return v, IndexError{Index: i, Len: len(s)}
					}
					s[i] = v
					return v, nil
				})
			},
		)
	}
}

// Field returns a func which produces a Grip onto a field of a struct,
// as selected by get and set. Writes mutate the struct in place. Reading
// or writing through a nil pointer fails with a [NilTargetError].
func Field[S, V any](get func(*S) V, set func(*S, V)) func(*S) Grip[V] {
	return func(s *S) Grip[V] {
		nilErr := NilTargetError{Type: fmt.Sprintf("%T", s)}
		return Manual(
			func() Result[V] {
				if s == nil {
					return Fail[V](nilErr)
				}
				return Sync(get(s))
			},
			func(r Result[V]) Result[V] {
				return Map(r, func(v V) (V, error) {
					if s == nil {
						return v, nilErr
					}
					set(s, v)
					return v, nil
				})
			},
		)
	}
}

// PropGrip is a Grip onto a part of the composite value of another Grip.
// Writes never mutate the composite value. A modified copy is written
// back to the outer Grip instead, so anyone holding the previous value
// keeps seeing it unchanged.
type PropGrip[S, V any] struct {
	subject Grip[S]
	get     func(S) Result[V]
	with    func(S, V) (S, error)
	without func(S) S
}

// Entry returns a Grip onto key of the map held by g.
func Entry[K comparable, V any](g Grip[map[K]V], key K) *PropGrip[map[K]V, V] {
	return &PropGrip[map[K]V, V]{
		subject: g,
		get: func(m map[K]V) Result[V] {
			v, ok := m[key]
			if !ok {
				return Empty[V]()
			}
			return Sync(v)
		},
		with: func(m map[K]V, v V) (map[K]V, error) {
			next := maps.Clone(m)
			if next == nil {
				next = make(map[K]V, 1)
			}
			next[key] = v
			return next, nil
		},
		without: func(m map[K]V) map[K]V {
			next := maps.Clone(m)
			delete(next, key)
			return next
		},
	}
}

// Index returns a Grip onto index i of the slice held by g.
func Index[V any](g Grip[[]V], i int) *PropGrip[[]V, V] {
	return &PropGrip[[]V, V]{
		subject: g,
		get: func(s []V) Result[V] {
			if i < 0 || i >= len(s) {
				return Fail[V](IndexError{Index: i, Len: len(s)})
			}
			return Sync(s[i])
		},
		with: func(s []V, v V) ([]V, error) {
			if i < 0 || i >= len(s) {
				return nil, IndexError{Index: i, Len: len(s)}
			}
			next := slices.Clone(s)
			next[i] = v
			return next, nil
		},
	}
}

// Prop returns a Grip onto a part of the struct held by g. The struct is
// passed around by value, so with receives a copy it may modify freely.
func Prop[S, V any](g Grip[S], get func(S) V, with func(S, V) S) *PropGrip[S, V] {
	return &PropGrip[S, V]{
		subject: g,
		get: func(s S) Result[V] {
			return Sync(get(s))
		},
		with: func(s S, v V) (S, error) {
			return with(s, v), nil
		},
	}
}

// Value implements the [Grip] interface.
func (g *PropGrip[S, V]) Value() Result[V] {
	return Bind(g.subject.Value(), g.get)
}

// Set implements the [Grip] interface. The returned Result yields the
// written value once the outer Grip has accepted the new composite value.
func (g *PropGrip[S, V]) Set(r Result[V]) Result[V] {
	return Bind(g.subject.Value(), func(s S) Result[V] {
		if r.IsEmpty() && g.without != nil {
			return Bind(g.subject.Set(Sync(g.without(s))), func(S) Result[V] {
				return r
			})
		}
		return Bind(r, func(v V) Result[V] {
			next, err := g.with(s, v)
			if err != nil {
				return Fail[V](err)
			}
			return Map(g.subject.Set(Sync(next)), func(S) (V, error) {
				return v, nil
			})
		})
	})
}

// Unwrap implements the [Unwrapper] interface.
func (g *PropGrip[S, V]) Unwrap() any {
	return g.subject
}
