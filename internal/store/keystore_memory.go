// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type memoryKeystore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKeystore returns a [Keystore] that lives only as long as the
// process. Useful for ephemeral sessions and tests.
func NewMemoryKeystore() Keystore {
	return &memoryKeystore{values: make(map[string]string)}
}

func (m *memoryKeystore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *memoryKeystore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memoryKeystore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
