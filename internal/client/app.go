// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/service"
	"github.com/MKhiriev/aimemo/models"
)

// App hydrates the session once and then runs the UI.
type App struct {
	sessions service.SessionService
	ui       UI

	logger *logger.Logger
}

// NewApp wires the client runtime.
func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SessionService == nil {
		return nil, ErrNoSessionService
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		sessions: services.SessionService,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run restores the saved session and blocks in the UI until the user
// quits or ctx is cancelled. Hydration never fails: a broken session
// leaves the client anonymous with a notice for the UI.
func (a *App) Run(ctx context.Context) error {
	snapshot := a.sessions.Hydrate(ctx)

	event := a.logger.Info()
	if snapshot.Notice != "" {
		event = a.logger.Warn().Str("notice", snapshot.Notice)
	}
	event.Str("func", "App.Run").Stringer("state", snapshot.State).Msg("session hydrated")
	if snapshot.State == models.StateAuthenticated {
		a.logger.Debug().Str("func", "App.Run").Str("user_id", snapshot.Session.User.ID).Msg("restored signed-in user")
	}

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}
