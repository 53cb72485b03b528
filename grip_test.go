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

type ctxKey struct{}

type contextGrip[T any] struct {
	Grip[T]

	seen []any
}

func (g *contextGrip[T]) ValueContext(ctx context.Context) Result[T] {
	g.seen = append(g.seen, ctx.Value(ctxKey{}))
	return g.Grip.Value()
}

func (g *contextGrip[T]) SetContext(ctx context.Context, r Result[T]) Result[T] {
	g.seen = append(g.seen, ctx.Value(ctxKey{}))
	return g.Grip.Set(r)
}

func TestGetPut(t *testing.T) {
	t.Run("will pass the context on", func(t *testing.T) {
		t.Run("if the grip is a ContextGrip", func(t *testing.T) {
			g := &contextGrip[int]{Grip: InMemory(1)}
			ctx := context.WithValue(context.Background(), ctxKey{}, "op")

			_, err := Put[int](ctx, g, 2)
			if !assert.Nil(t, err) {
				return
			}
			v, err := Get[int](ctx, g)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, 2, v) {
				return
			}
			if !assert.Equal(t, []any{"op", "op"}, g.seen) {
				return
			}
		})
	})

	t.Run("will use Value and Set", func(t *testing.T) {
		t.Run("if the grip is not a ContextGrip", func(t *testing.T) {
			g := InMemory(1)
			ctx := context.WithValue(context.Background(), ctxKey{}, "op")

			if !assert.Equal(t, Sync(3), SetContext[int](ctx, g, Sync(3))) {
				return
			}
			if !assert.Equal(t, Sync(3), ValueContext[int](ctx, g)) {
				return
			}
		})
	})
}
