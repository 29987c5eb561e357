// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/aimemo/internal/adapter"
	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/store"
	"github.com/MKhiriev/aimemo/internal/validators"
	"github.com/MKhiriev/aimemo/models"
)

// ClientServices is the dependency bundle handed to the TUI. It replaces
// any global session singleton.
type ClientServices struct {
	SessionService SessionService
	HealthService  ClientHealthService
	AppInfoService AppInfoService
}

// NewClientServices wires the client services over the given storage and
// server adapter.
func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*ClientServices, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		SessionService: NewSessionService(
			storages.SessionRepository,
			serverAdapter,
			validators.NewAuthValidator(),
			cfg.Session.Revalidate,
			logger,
		),
		HealthService:  NewClientHealthService(serverAdapter, logger),
		AppInfoService: appInfo,
	}, nil
}
