// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *ServerConfig {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "postgres://localhost/aimemo"
	cfg.App.TokenSignKey = "secret"
	return cfg.ServerConfig()
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ServerConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ServerConfig) {}},
		{name: "no dsn", mutate: func(cfg *ServerConfig) { cfg.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no sign key", mutate: func(cfg *ServerConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no address", mutate: func(cfg *ServerConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{
			name: "redis without limit",
			mutate: func(cfg *ServerConfig) {
				cfg.Redis.Address = "localhost:6379"
				cfg.Limiter.MaxAttempts = 0
			},
			wantErr: ErrInvalidLimiterConfigs,
		},
		{name: "no health interval", mutate: func(cfg *ServerConfig) { cfg.Workers.HealthInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{
			name: "memory keystore needs no path",
			mutate: func(cfg *ClientConfig) {
				cfg.Storage.Keystore = Keystore{Driver: KeystoreMemory}
			},
		},
		{
			name: "sqlite without path",
			mutate: func(cfg *ClientConfig) {
				cfg.Storage.Keystore = Keystore{Driver: KeystoreSQLite}
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "unknown driver",
			mutate: func(cfg *ClientConfig) {
				cfg.Storage.Keystore.Driver = "keychain"
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{name: "no backend", mutate: func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no health interval", mutate: func(cfg *ClientConfig) { cfg.Workers.HealthInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig().ClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStructuredConfig_ValidateNegativeDuration(t *testing.T) {
	cfg := &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}
