// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

// Casts convert values between the value space A of a subject
// and the value space B exposed by a TransformGrip.
type Casts[A, B any] struct {
	In  func(Result[B]) Result[A]
	Out func(Result[A]) Result[B]
}

// SyncCasts builds Casts from synchronous conversion functions.
// Pending values are converted once they resolve.
func SyncCasts[A, B any](in func(B) (A, error), out func(A) (B, error)) Casts[A, B] {
	return Casts[A, B]{
		In: func(r Result[B]) Result[A] {
			return Map(r, in)
		},
		Out: func(r Result[A]) Result[B] {
			return Map(r, out)
		},
	}
}

// AsyncCasts builds Casts from conversion functions which return futures.
func AsyncCasts[A, B any](in func(B) *Future[A], out func(A) *Future[B]) Casts[A, B] {
	return Casts[A, B]{
		In: func(r Result[B]) Result[A] {
			return Bind(r, func(b B) Result[A] {
				return Async(in(b))
			})
		},
		Out: func(r Result[A]) Result[B] {
			return Bind(r, func(a A) Result[B] {
				return Async(out(a))
			})
		},
	}
}

// TransformGrip exposes a Grip[A] as a Grip[B].
type TransformGrip[A, B any] struct {
	subject Grip[A]
	casts   Casts[A, B]
}

// Transform returns a Grip which reads subject through casts.Out
// and writes to it through casts.In.
func Transform[A, B any](subject Grip[A], casts Casts[A, B]) *TransformGrip[A, B] {
	return &TransformGrip[A, B]{
		subject: subject,
		casts:   casts,
	}
}

// Value implements the [Grip] interface.
func (g *TransformGrip[A, B]) Value() Result[B] {
	return g.casts.Out(g.subject.Value())
}

// Set implements the [Grip] interface. A synchronous failure of casts.In
// is returned before anything is written to the subject. Otherwise the
// returned Result yields r once the subject has accepted the write.
func (g *TransformGrip[A, B]) Set(r Result[B]) Result[B] {
	a := g.casts.In(r)
	if err := a.Err(); err != nil {
		return Fail[B](err)
	}
	return Bind(g.subject.Set(a), func(A) Result[B] {
		return r
	})
}

// Unwrap implements the [Unwrapper] interface.
func (g *TransformGrip[A, B]) Unwrap() any {
	return g.subject
}
