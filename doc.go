// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package grip provides composable read/write handles onto state.
//
// A [Grip] is a tiny facade with just two operations, Value and Set.
// What sits behind it may be a variable, an external store, a value
// derived from other grips or a combination of grips. The value of a
// Grip may be available right away or only at some later point, which
// is why both operations deal in [Result] values: a Result is either
// empty, ready (a value or a failure) or pending on a [Future].
//
// # Primitives
//
//	counter := grip.InMemory(0)
//	env := grip.ManualSync(
//	    func() (string, error) { return os.Getenv("MODE"), nil },
//	    func(v string) (string, error) { return v, os.Setenv("MODE", v) },
//	)
//
// # Decorators and Combinators
//
// Grips are composed by wrapping them. Every wrapper holds a reference
// to the grip it wraps and delegates to it:
//
//   - [ReadOnly]: ignores writes
//   - [Observe]: notifies observers of writes
//   - [Cache]: memoizes reads until a write or an explicit Expire
//   - [Transform]: converts between two value types
//   - [WithFallback]: reads a fallback grip when the primary one has no value
//   - [Guarded]: switches between two grips based on a [Guard]
//   - [AsAsync]: turns a synchronous grip into an asynchronous one
//   - [Entry], [Index] and [Prop]: focus on a part of a composite value
//
// All of them work the same regardless of whether the wrapped grip
// returns ready or pending results:
//
//	settings := grip.Observe(grip.InMemory(map[string]string{}))
//	theme := grip.WithFallback(
//	    grip.Entry(settings, "theme"),
//	    grip.InMemory("light"),
//	)
//
//	v, err := grip.Get(ctx, theme) // "light"
package grip
