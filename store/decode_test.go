// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package store

import (
	"context"
	"testing"
	"time"

	"github.com/z5labs/grip"

	"github.com/stretchr/testify/assert"
)

type server struct {
	Addr    string        `grip:"addr"`
	Timeout time.Duration `grip:"timeout"`
}

func TestDecode(t *testing.T) {
	t.Run("will decode the document", func(t *testing.T) {
		t.Run("if durations are strings", func(t *testing.T) {
			doc := grip.InMemory(map[string]any{
				"addr":    ":8080",
				"timeout": "5s",
			})
			g := Decode[server](doc)

			v, err := grip.Get[server](context.Background(), g)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, server{Addr: ":8080", Timeout: 5 * time.Second}, v) {
				return
			}
		})
	})

	t.Run("will return a TypeCoercionError", func(t *testing.T) {
		t.Run("if a duration can not be parsed", func(t *testing.T) {
			doc := grip.InMemory(map[string]any{
				"timeout": "soon",
			})
			g := Decode[server](doc)

			var terr TypeCoercionError
			if !assert.ErrorAs(t, g.Value().Err(), &terr) {
				return
			}
		})
	})

	t.Run("will round trip through a yaml document", func(t *testing.T) {
		t.Run("if a struct is written", func(t *testing.T) {
			kv := &Memory{}
			g := Decode[server](YAML[map[string]any](kv, "server", nil))

			want := server{Addr: "localhost:9090", Timeout: 2 * time.Second}
			_, err := grip.Put[server](context.Background(), g, want)
			if !assert.Nil(t, err) {
				return
			}

			got, err := grip.Get[server](context.Background(), g)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, want, got) {
				return
			}
		})
	})
}
