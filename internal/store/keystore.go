// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
)

//go:generate mockgen -source=keystore.go -destination=../mock/keystore_mock.go -package=mock

// Fixed keys under which the client session lives in a [Keystore].
const (
	KeyToken = "aimemo_token"
	KeyUser  = "aimemo_user"
)

// ErrKeyNotFound is returned by [Keystore.Get] for a key that was never set
// or has been deleted.
var ErrKeyNotFound = errors.New("key not found")

// Keystore is the small key-value capability the client persists its
// session in. Values outlive the process.
type Keystore interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
