// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/store"
)

// Services is the server-side dependency bundle handed to handlers and
// workers.
type Services struct {
	AuthService   AuthService
	HealthService HealthService

	verifier *jwksVerifier
}

// NewServices wires the server services over storages.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	verifier := NewJWKSVerifier(cfg.OAuth, logger).(*jwksVerifier)

	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, storages.ResetLimiter, verifier, cfg.App, logger),
		HealthService: NewHealthService(cfg.App.Name, storages.UserRepository, storages.ResetLimiter, logger),
		verifier:      verifier,
	}
}

// Close stops background work started by the services.
func (s *Services) Close() error {
	if s.verifier == nil {
		return nil
	}
	return s.verifier.Close()
}
