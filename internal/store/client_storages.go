// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/logger"
)

// ClientStorages groups the client-side storage of the session.
type ClientStorages struct {
	// Keystore is the raw key-value store selected by config.
	Keystore Keystore

	// SessionRepository reads and writes the session through Keystore.
	SessionRepository LocalSessionRepository

	closeFn func() error
}

// NewClientStorages opens the keystore selected by cfg.Keystore.Driver:
//   - "file": JSON file at cfg.Keystore.Path.
//   - "sqlite": SQLite database at cfg.Keystore.Path, migrated on open.
//     A ".json" path is swapped for ".db".
//   - "memory": process-local map.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Str("driver", cfg.Keystore.Driver).Msg("creating client storages...")

	storages := &ClientStorages{closeFn: func() error { return nil }}

	switch cfg.Keystore.Driver {
	case config.KeystoreFile:
		keystore, err := NewFileKeystore(cfg.Keystore.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("file keystore: %w", err)
		}
		storages.Keystore = keystore

	case config.KeystoreSQLite:
		path := cfg.Keystore.Path
		if filepath.Ext(path) == ".json" {
			path = strings.TrimSuffix(path, ".json") + ".db"
		}

		db, err := NewConnectSQLite(ctx, path, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		storages.Keystore = NewSQLiteKeystore(db)
		storages.closeFn = db.Close

	case config.KeystoreMemory:
		storages.Keystore = NewMemoryKeystore()

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeystoreDriver, cfg.Keystore.Driver)
	}

	storages.SessionRepository = NewLocalSessionRepository(storages.Keystore, logger)
	return storages, nil
}

// Close releases the underlying database, if any.
func (s *ClientStorages) Close() error {
	return s.closeFn()
}
