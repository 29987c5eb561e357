// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type sqliteKeystore struct {
	db *DB
}

// NewSQLiteKeystore returns a [Keystore] over the migrated "keystore"
// table of db.
func NewSQLiteKeystore(db *DB) Keystore {
	return &sqliteKeystore{db: db}
}

func (k *sqliteKeystore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := k.db.QueryRowContext(ctx, keystoreGet, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, nil
}

func (k *sqliteKeystore) Set(ctx context.Context, key, value string) error {
	if _, err := k.db.ExecContext(ctx, keystoreSet, key, value); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (k *sqliteKeystore) Delete(ctx context.Context, key string) error {
	if _, err := k.db.ExecContext(ctx, keystoreDelete, key); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
