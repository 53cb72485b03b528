// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

// GuardedGrip switches between a source and a guarded Grip depending on
// a Guard. While the guard holds, reads come from the guarded grip and
// writes go to both grips. Otherwise only the source grip is used.
type GuardedGrip[T any] struct {
	source  Grip[T]
	guarded Grip[T]
	guard   Guard
	async   bool
}

// Guarded returns a GuardedGrip which decides on every call whether it can
// operate synchronously. It does so only when the guard resolves right away
// and neither the source nor the guarded value is pending. In every other
// case the returned results are pending.
func Guarded[T any](source Grip[T], guard Guard, guarded Grip[T]) *GuardedGrip[T] {
	return &GuardedGrip[T]{
		source:  source,
		guarded: guarded,
		guard:   guard,
	}
}

// GuardedAsync is like Guarded but always returns pending results.
func GuardedAsync[T any](source Grip[T], guard Guard, guarded Grip[T]) *GuardedGrip[T] {
	g := Guarded(source, guard, guarded)
	g.async = true
	return g
}

// Value implements the [Grip] interface.
func (g *GuardedGrip[T]) Value() Result[T] {
	cond := g.guard()
	if err := cond.Err(); err != nil {
		return Fail[T](err)
	}

	src, grd := g.source.Value(), g.guarded.Value()
	if g.isSync(cond, src, grd) {
		if on, _ := cond.Now(); on {
			return grd
		}
		return src
	}

	return Async(Then(cond.Future(), func(on bool) Result[T] {
		if on {
			return grd
		}
		return src
	}))
}

// Set implements the [Grip] interface. A failing guard is returned before
// anything is written. When the guard holds, the source is written before
// the guarded grip and the result of the latter is returned.
func (g *GuardedGrip[T]) Set(r Result[T]) Result[T] {
	cond := g.guard()
	if err := cond.Err(); err != nil {
		return Fail[T](err)
	}

	if g.isSync(cond, g.source.Value(), g.guarded.Value()) {
		if on, _ := cond.Now(); !on {
			return g.source.Set(r)
		}
		if res := g.source.Set(r); res.Err() != nil {
			return res
		}
		return g.guarded.Set(r)
	}

	return Async(Then(cond.Future(), func(on bool) Result[T] {
		if !on {
			return g.source.Set(r)
		}
		return Bind(g.source.Set(r), func(T) Result[T] {
			return g.guarded.Set(r)
		})
	}))
}

func (g *GuardedGrip[T]) isSync(cond Result[bool], src, grd Result[T]) bool {
	return !g.async && !cond.IsAsync() && !src.IsAsync() && !grd.IsAsync()
}
