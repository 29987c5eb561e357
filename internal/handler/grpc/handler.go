// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard grpc.health.v1 service of the backend.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/models"
)

// ServiceName is the name under which the backend reports its own health,
// next to the overall "" service.
const ServiceName = "aimemo"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status the health worker keeps in line
// with the HTTP /health answer. A handler instance is created once at
// startup and shared by the gRPC server.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a [Handler] that reports NOT_SERVING until the first
// [Handler.SetHealth].
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetHealth publishes resp: "ok" and "degraded" are SERVING, anything else
// is NOT_SERVING.
func (h *Handler) SetHealth(resp models.HealthResponse) {
	status := healthpb.HealthCheckResponse_SERVING
	if models.HealthStateOf(resp.Status) == models.HealthError {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(status)
}

// Shutdown sets every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
