// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

// Guard is a condition which may be known synchronously or only later.
// An empty Result counts as false.
type Guard func() Result[bool]

// GuardFunc returns a synchronous Guard.
func GuardFunc(f func() bool) Guard {
	return func() Result[bool] {
		return Sync(f())
	}
}

// GuardResult returns a Guard which may resolve asynchronously.
func GuardResult(f func() Result[bool]) Guard {
	return Guard(f)
}

// GuardGrip returns a Guard reading the current value of g.
func GuardGrip(g Grip[bool]) Guard {
	return g.Value
}

// And returns a Guard where all the given guards are joined together
// via the logical and (&&) operator. Evaluation stops at the first false.
func And(guards ...Guard) Guard {
	return func() Result[bool] {
		res := Sync(true)
		for _, guard := range guards {
			res = Bind(res, func(ok bool) Result[bool] {
				if !ok {
					return Sync(false)
				}
				return guard()
			})
		}
		return res
	}
}

// Or returns a Guard where all the given guards are joined together
// via the logical or (||) operator. Evaluation stops at the first true.
func Or(guards ...Guard) Guard {
	return func() Result[bool] {
		res := Sync(false)
		for _, guard := range guards {
			res = Bind(res, func(ok bool) Result[bool] {
				if ok {
					return Sync(true)
				}
				return guard()
			})
		}
		return res
	}
}

// Not returns a Guard negating the given one with the logical not (!) operator.
func Not(guard Guard) Guard {
	return func() Result[bool] {
		return Map(guard(), func(ok bool) (bool, error) {
			return !ok, nil
		})
	}
}
