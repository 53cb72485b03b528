// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func constGuard(v bool) Guard {
	return GuardFunc(func() bool { return v })
}

func asyncGuard(v bool) Guard {
	return GuardResult(func() Result[bool] {
		return Async(Resolved(v))
	})
}

func TestAnd(t *testing.T) {
	testCases := []struct {
		name     string
		guards   []Guard
		expected bool
	}{
		{name: "no guards", expected: true},
		{name: "all true", guards: []Guard{constGuard(true), constGuard(true)}, expected: true},
		{name: "one false", guards: []Guard{constGuard(true), constGuard(false)}, expected: false},
		{name: "async all true", guards: []Guard{asyncGuard(true), constGuard(true)}, expected: true},
		{name: "async one false", guards: []Guard{constGuard(true), asyncGuard(false)}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := And(tc.guards...)().Await(context.Background())
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, tc.expected, v) {
				return
			}
		})
	}

	t.Run("will not evaluate later guards", func(t *testing.T) {
		t.Run("if an earlier guard is false", func(t *testing.T) {
			called := false
			g := And(constGuard(false), GuardFunc(func() bool {
				called = true
				return true
			}))

			r := g()
			if !assert.False(t, r.IsAsync()) {
				return
			}
			if !assert.False(t, called) {
				return
			}
		})
	})
}

func TestOr(t *testing.T) {
	testCases := []struct {
		name     string
		guards   []Guard
		expected bool
	}{
		{name: "no guards", expected: false},
		{name: "all false", guards: []Guard{constGuard(false), constGuard(false)}, expected: false},
		{name: "one true", guards: []Guard{constGuard(false), constGuard(true)}, expected: true},
		{name: "async one true", guards: []Guard{asyncGuard(true), constGuard(false)}, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Or(tc.guards...)().Await(context.Background())
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, tc.expected, v) {
				return
			}
		})
	}
}

func TestNot(t *testing.T) {
	t.Run("will negate the guard", func(t *testing.T) {
		t.Run("if it is synchronous", func(t *testing.T) {
			v, err := Not(constGuard(true))().Now()
			if !assert.Nil(t, err) {
				return
			}
			if !assert.False(t, v) {
				return
			}
		})

		t.Run("if it is asynchronous", func(t *testing.T) {
			v, err := Not(asyncGuard(false))().Await(context.Background())
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, v) {
				return
			}
		})
	})

	t.Run("will propagate the guard failure", func(t *testing.T) {
		t.Run("if the guard fails", func(t *testing.T) {
			guardErr := errors.New("guard failed")
			g := Not(GuardResult(func() Result[bool] {
				return Fail[bool](guardErr)
			}))

			if !assert.ErrorIs(t, g().Err(), guardErr) {
				return
			}
		})
	})
}
