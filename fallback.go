// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

// FallbackOption configures a FallbackGrip.
type FallbackOption[T any] func(*FallbackGrip[T])

// FallbackWhen overrides the predicate deciding when the fallback
// value is used instead of the primary value. The default uses the
// fallback when the primary value is empty.
func FallbackWhen[T any](useFallback func(Result[T]) bool) FallbackOption[T] {
	return func(g *FallbackGrip[T]) {
		g.useFallback = useFallback
	}
}

// IsZero reports whether r is empty or a ready, non failed zero value.
// It can be used with FallbackWhen.
func IsZero[T comparable](r Result[T]) bool {
	if r.IsEmpty() {
		return true
	}
	v, err := r.Now()
	if err != nil {
		return false
	}
	var zero T
	return v == zero
}

// FallbackGrip combines a primary and a fallback Grip. It is handy for
// layering a local override on top of a default, e.g. a setting which
// can be overridden per user.
type FallbackGrip[T any] struct {
	primary     Grip[T]
	fallback    Grip[T]
	useFallback func(Result[T]) bool
}

// WithFallback returns a Grip reading primary, unless the primary
// value calls for the fallback. Writes go to both grips.
func WithFallback[T any](primary, fallback Grip[T], opts ...FallbackOption[T]) *FallbackGrip[T] {
	g := &FallbackGrip[T]{
		primary:     primary,
		fallback:    fallback,
		useFallback: Result[T].IsEmpty,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Value implements the [Grip] interface.
func (g *FallbackGrip[T]) Value() Result[T] {
	r := g.primary.Value()
	if g.useFallback(r) {
		return g.fallback.Value()
	}
	return r
}

// Set implements the [Grip] interface. The fallback is written first and
// a synchronous failure there stops the primary from being written.
// The result of the primary write is returned.
func (g *FallbackGrip[T]) Set(r Result[T]) Result[T] {
	fr := g.fallback.Set(r)
	if fr.Err() != nil {
		return fr
	}
	return g.primary.Set(r)
}

// Unwrap implements the [Unwrapper] interface.
func (g *FallbackGrip[T]) Unwrap() any {
	return g.primary
}
