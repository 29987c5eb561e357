// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/models"
)

func check(t *testing.T, h *Handler, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_SetHealth(t *testing.T) {
	h := NewHandler(logger.Nop())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))

	tests := []struct {
		status string
		want   healthpb.HealthCheckResponse_ServingStatus
	}{
		{status: models.HealthStatusOK, want: healthpb.HealthCheckResponse_SERVING},
		{status: models.HealthStatusDegraded, want: healthpb.HealthCheckResponse_SERVING},
		{status: models.HealthStatusError, want: healthpb.HealthCheckResponse_NOT_SERVING},
		{status: "", want: healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		h.SetHealth(models.HealthResponse{Status: tt.status})
		assert.Equal(t, tt.want, check(t, h, ""), tt.status)
		assert.Equal(t, tt.want, check(t, h, ServiceName), tt.status)
	}
}

func TestHandler_ShutdownIgnoresUpdates(t *testing.T) {
	h := NewHandler(logger.Nop())
	h.SetHealth(models.HealthResponse{Status: models.HealthStatusOK})

	h.Shutdown()
	h.SetHealth(models.HealthResponse{Status: models.HealthStatusOK})

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))
}
