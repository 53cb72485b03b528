// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package grip

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueGrip(t *testing.T) {
	t.Run("will return the last written value", func(t *testing.T) {
		t.Run("if the value is ready", func(t *testing.T) {
			g := InMemory("foo")

			v, err := Put(context.Background(), g, "bar")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "bar", v) {
				return
			}

			v, err = Get(context.Background(), g)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "bar", v) {
				return
			}
		})

		t.Run("if the value is pending", func(t *testing.T) {
			fut := Resolved(2)
			g := InMemoryResult(Async(Resolved(1)))
			g.Set(Async(fut))

			r := g.Value()
			if !assert.True(t, r.IsAsync()) {
				return
			}
			if !assert.Same(t, fut, r.Future()) {
				return
			}
		})
	})

	t.Run("will describe its value", func(t *testing.T) {
		t.Run("if it is formatted as a string", func(t *testing.T) {
			g := InMemory(42)
			if !assert.Equal(t, "ValueGrip(Sync(42))", g.String()) {
				return
			}
		})
	})
}
