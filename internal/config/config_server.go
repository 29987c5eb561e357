// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the backend's view of [StructuredConfig].
type ServerConfig struct {
	App     App
	DB      DB
	Redis   Redis
	Server  Server
	OAuth   OAuth
	Limiter Limiter
	Workers Workers
}

// GetServerConfig builds and validates the server configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerConfig()
	return serverCfg, serverCfg.validate()
}

// ServerConfig projects the fields relevant to the server runtime.
func (cfg *StructuredConfig) ServerConfig() *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		DB:      cfg.Storage.DB,
		Redis:   cfg.Storage.Redis,
		Server:  cfg.Server,
		OAuth:   cfg.OAuth,
		Limiter: cfg.Limiter,
		Workers: cfg.Workers,
	}
}
