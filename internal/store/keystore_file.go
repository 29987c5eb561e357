// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/aimemo/internal/logger"
)

// fileKeystore keeps all values in one JSON object on disk. Every write
// rewrites the file through a temp file and rename, so a crash never leaves
// a half-written keystore behind.
type fileKeystore struct {
	path   string
	logger *logger.Logger

	mu     sync.RWMutex
	values map[string]string
}

// NewFileKeystore opens (or lazily creates) the JSON keystore at path.
// The file is created with 0600 permissions on the first write. A file that
// does not decode is removed and the keystore starts empty.
func NewFileKeystore(path string, logger *logger.Logger) (Keystore, error) {
	if path == "" {
		return nil, fmt.Errorf("file keystore: empty path")
	}

	k := &fileKeystore{path: path, logger: logger, values: make(map[string]string)}
	if err := k.load(); err != nil {
		return nil, err
	}
	return k, nil
}

func (k *fileKeystore) Get(_ context.Context, key string) (string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	v, ok := k.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (k *fileKeystore) Set(_ context.Context, key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	prev, had := k.values[key]
	k.values[key] = value
	if err := k.persist(); err != nil {
		if had {
			k.values[key] = prev
		} else {
			delete(k.values, key)
		}
		return err
	}
	return nil
}

func (k *fileKeystore) Delete(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	prev, had := k.values[key]
	if !had {
		return nil
	}

	delete(k.values, key)
	if err := k.persist(); err != nil {
		k.values[key] = prev
		return err
	}
	return nil
}

func (k *fileKeystore) load() error {
	data, err := os.ReadFile(k.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read keystore file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	values := make(map[string]string)
	if err = json.Unmarshal(data, &values); err != nil {
		k.logger.Warn().Err(err).Str("func", "*fileKeystore.load").Str("path", k.path).Msg("keystore file is corrupted, starting empty")
		if err = os.Remove(k.path); err != nil && !os.IsNotExist(err) {
			k.logger.Err(err).Str("func", "*fileKeystore.load").Msg("failed to remove corrupted keystore file")
		}
		return nil
	}

	k.values = values
	return nil
}

func (k *fileKeystore) persist() error {
	dir := filepath.Dir(k.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create keystore dir: %w", err)
	}

	payload, err := json.MarshalIndent(k.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode keystore: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".keystore-*")
	if err != nil {
		return fmt.Errorf("create keystore temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write keystore temp file: %w", err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod keystore temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close keystore temp file: %w", err)
	}

	if err = os.Rename(tmp.Name(), k.path); err != nil {
		return fmt.Errorf("replace keystore file: %w", err)
	}
	return nil
}
