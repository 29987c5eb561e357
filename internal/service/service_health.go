// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/store"
	"github.com/MKhiriev/aimemo/models"
)

const healthProbeTimeout = 2 * time.Second

type healthService struct {
	appName        string
	userRepository store.UserRepository
	resetLimiter   store.ResetLimiter
	logger         *logger.Logger
}

// NewHealthService returns the server [HealthService].
func NewHealthService(appName string, userRepository store.UserRepository, resetLimiter store.ResetLimiter, logger *logger.Logger) HealthService {
	return &healthService{
		appName:        appName,
		userRepository: userRepository,
		resetLimiter:   resetLimiter,
		logger:         logger,
	}
}

// Check implements [HealthService]. Each probe is bounded by its own
// timeout.
func (h *healthService) Check(ctx context.Context) models.HealthResponse {
	resp := models.HealthResponse{Status: models.HealthStatusOK, App: h.appName}

	if err := probe(ctx, h.userRepository.Ping); err != nil {
		h.logger.Err(err).Str("func", "*healthService.Check").Msg("database is down")
		resp.Status = models.HealthStatusError
		return resp
	}

	if err := probe(ctx, h.resetLimiter.Ping); err != nil {
		h.logger.Warn().Err(err).Str("func", "*healthService.Check").Msg("limiter store is down")
		resp.Status = models.HealthStatusDegraded
	}

	return resp
}

func probe(ctx context.Context, ping func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	return ping(ctx)
}
