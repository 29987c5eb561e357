// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler bundles the transport handlers of the backend.
package handler

import (
	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/handler/grpc"
	"github.com/MKhiriev/aimemo/internal/handler/http"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the REST handler and, when a gRPC address is set, the
// gRPC health handler. The REST API is mandatory.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPHandler
	}

	handlers := &Handlers{HTTP: http.NewHandler(services, cfg, logger)}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	return handlers, nil
}
