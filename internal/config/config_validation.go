// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// Keystore drivers understood by the client.
const (
	KeystoreFile   = "file"
	KeystoreSQLite = "sqlite"
	KeystoreMemory = "memory"
)

// validate checks role-independent invariants of the merged config.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Keystore.Driver != "" && !slices.Contains(
		[]string{KeystoreFile, KeystoreSQLite, KeystoreMemory}, cfg.Storage.Keystore.Driver) {
		return fmt.Errorf("%w: unknown keystore driver %q", ErrInvalidStorageConfigs, cfg.Storage.Keystore.Driver)
	}

	if cfg.App.TokenDuration < 0 || cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Redis.Address != "" && (cfg.Limiter.MaxAttempts <= 0 || cfg.Limiter.Window <= 0) {
		return ErrInvalidLimiterConfigs
	}

	if cfg.Workers.HealthInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Keystore.Driver {
	case KeystoreMemory:
	case KeystoreFile, KeystoreSQLite:
		if cfg.Storage.Keystore.Path == "" {
			return fmt.Errorf("%w: keystore path is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown keystore driver %q", ErrInvalidStorageConfigs, cfg.Storage.Keystore.Driver)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.HealthInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
