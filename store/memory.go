// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package store

import (
	"maps"
	"sync"
)

// Memory is a map backed KV. The zero value is ready to use.
type Memory struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemory returns a Memory holding a copy of m.
func NewMemory(m map[string]string) *Memory {
	return &Memory{m: maps.Clone(m)}
}

// Load implements the [KV] interface.
func (s *Memory) Load(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

// Store implements the [KV] interface.
func (s *Memory) Store(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[string]string)
	}
	s.m[key] = value
	return nil
}

// Delete implements the [KV] interface.
func (s *Memory) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
