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

func TestReadOnly(t *testing.T) {
	t.Run("will ignore writes", func(t *testing.T) {
		t.Run("if Set is called any number of times", func(t *testing.T) {
			g := InMemory("foo")
			ro := ReadOnly(g)

			for _, next := range []string{"bar", "baz", "buzz"} {
				v, err := Put(context.Background(), ro, next)
				if !assert.Nil(t, err) {
					return
				}
				if !assert.Equal(t, next, v) {
					return
				}
			}

			v, err := Get(context.Background(), ro)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "foo", v) {
				return
			}
		})
	})

	t.Run("will see writes", func(t *testing.T) {
		t.Run("if they are made on the wrapped grip", func(t *testing.T) {
			g := InMemory("foo")
			ro := ReadOnly(g)

			g.Set(Sync("bar"))

			v, err := Get(context.Background(), ro)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "bar", v) {
				return
			}
		})
	})

	t.Run("will stay observable", func(t *testing.T) {
		t.Run("if the wrapped grip is observable", func(t *testing.T) {
			obs := Observe[string](InMemory("foo"))
			ro := ReadOnly[string](obs)

			found, ok := AsObservable[string](ro)
			if !assert.True(t, ok) {
				return
			}

			var rec recorder[string]
			found.AddObserver(rec.observe)

			obs.Set(Sync("bar"))

			calls := rec.Calls()
			if !assert.Len(t, calls, 1) {
				return
			}
			if !assert.Equal(t, Sync("bar"), calls[0].next) {
				return
			}
		})
	})

	t.Run("will not be writable through its observable", func(t *testing.T) {
		t.Run("if the wrapped grip is observable", func(t *testing.T) {
			obs := Observe[string](InMemory("foo"))
			ro := ReadOnly[string](obs)

			found, ok := AsObservable[string](ro)
			if !assert.True(t, ok) {
				return
			}

			r := found.Set(Sync("bar"))
			if !assert.Equal(t, Sync("bar"), r) {
				return
			}
			if !assert.Equal(t, Sync("foo"), ro.Value()) {
				return
			}
			if !assert.Equal(t, Sync("foo"), obs.Value()) {
				return
			}
		})

		t.Run("if the observable is found as a notifier", func(t *testing.T) {
			obs := Observe[string](InMemory("foo"))
			ro := ReadOnly[string](obs)

			n, ok := NotifierOf(ro)
			if !assert.True(t, ok) {
				return
			}

			notified := 0
			remove := n.Notify(func() { notified++ })
			obs.Set(Sync("bar"))
			remove()
			obs.Set(Sync("baz"))

			if !assert.Equal(t, 1, notified) {
				return
			}
			if g, isGrip := n.(Grip[string]); isGrip {
				g.Set(Sync("qux"))
			}
			if !assert.Equal(t, Sync("baz"), ro.Value()) {
				return
			}
		})
	})
}
