// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/aimemo/internal/adapter"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/models"
)

type clientHealthService struct {
	serverAdapter adapter.ServerAdapter
	now           func() time.Time
	logger        *logger.Logger
}

// NewClientHealthService returns the [ClientHealthService] over serverAdapter.
func NewClientHealthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientHealthService {
	return &clientHealthService{serverAdapter: serverAdapter, now: time.Now, logger: logger}
}

// Check maps "ok" to healthy, "degraded" to warning and everything else,
// including a failed request, to error.
func (h *clientHealthService) Check(ctx context.Context) models.HealthReport {
	report := models.HealthReport{CheckedAt: h.now()}

	resp, err := h.serverAdapter.Health(ctx)
	if err != nil {
		h.logger.Debug().Err(err).Str("func", "*clientHealthService.Check").Msg("health check failed")
		report.State = models.HealthError
		report.Status = models.HealthStatusError
		report.Err = mapAdapterError(err)
		return report
	}

	report.State = models.HealthStateOf(resp.Status)
	report.Status = resp.Status
	report.App = resp.App
	return report
}
