// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/service"
)

// Handler holds everything the REST handlers need. It is created once at
// startup and shared by all requests.
type Handler struct {
	services *service.Services

	// corsOrigins are the browser origins allowed to call the API.
	corsOrigins []string

	// requestTimeout bounds a single request; zero disables the bound.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		corsOrigins:    cfg.CORSAllowOrigins,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
