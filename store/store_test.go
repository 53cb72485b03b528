// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/z5labs/grip"

	"github.com/stretchr/testify/assert"
)

type failingKV struct {
	err error
}

func (kv failingKV) Load(string) (string, bool, error) { return "", false, kv.err }

func (kv failingKV) Store(string, string) error { return kv.err }

func (kv failingKV) Delete(string) error { return kv.err }

func TestRaw(t *testing.T) {
	t.Run("will read empty", func(t *testing.T) {
		t.Run("if the key is missing", func(t *testing.T) {
			g := Raw(&Memory{}, "missing")

			if !assert.True(t, g.Value().IsEmpty()) {
				return
			}
		})
	})

	t.Run("will delete the key", func(t *testing.T) {
		t.Run("if empty is written", func(t *testing.T) {
			kv := NewMemory(map[string]string{"a": "1"})
			g := Raw(kv, "a")

			r := g.Set(grip.Empty[string]())
			if !assert.Nil(t, r.Err()) {
				return
			}

			_, ok, _ := kv.Load("a")
			if !assert.False(t, ok) {
				return
			}
		})
	})

	t.Run("will return a LoadError", func(t *testing.T) {
		t.Run("if the store fails to load", func(t *testing.T) {
			loadErr := errors.New("load failed")
			g := Raw(failingKV{err: loadErr}, "a")

			err := g.Value().Err()

			var lerr LoadError
			if !assert.ErrorAs(t, err, &lerr) {
				return
			}
			if !assert.Equal(t, "a", lerr.Key) {
				return
			}
			if !assert.ErrorIs(t, err, loadErr) {
				return
			}
		})
	})

	t.Run("will return a StoreError", func(t *testing.T) {
		t.Run("if the store fails to store", func(t *testing.T) {
			storeErr := errors.New("store failed")
			g := Raw(failingKV{err: storeErr}, "a")

			err := g.Set(grip.Sync("1")).Err()

			var serr StoreError
			if !assert.ErrorAs(t, err, &serr) {
				return
			}
			if !assert.ErrorIs(t, err, storeErr) {
				return
			}
		})
	})
}

func TestString(t *testing.T) {
	t.Run("will read the default", func(t *testing.T) {
		t.Run("if the key is missing", func(t *testing.T) {
			g := String(&Memory{}, "mode", "dev")

			v, err := grip.Get[string](context.Background(), g)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "dev", v) {
				return
			}
		})
	})

	t.Run("will read the stored value", func(t *testing.T) {
		t.Run("if it has been written", func(t *testing.T) {
			kv := &Memory{}
			g := String(kv, "mode", "dev")

			_, err := grip.Put[string](context.Background(), g, "prod")
			if !assert.Nil(t, err) {
				return
			}

			v, err := grip.Get[string](context.Background(), g)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "prod", v) {
				return
			}

			stored, ok, err := kv.Load("mode")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, "prod", stored) {
				return
			}
		})
	})
}
