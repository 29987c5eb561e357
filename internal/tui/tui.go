// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/service"
	"github.com/MKhiriev/aimemo/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the interactive terminal client on top of [service.ClientServices].
type TUI struct {
	services       *service.ClientServices
	healthInterval time.Duration

	logger *logger.Logger
}

// New returns a TUI. The health indicator refreshes every
// cfg.HealthInterval; a non-positive interval checks once per visit.
func New(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SessionService == nil || services.HealthService == nil || services.AppInfoService == nil {
		return nil, ErrNoServices
	}

	return &TUI{
		services:       services,
		healthInterval: cfg.HealthInterval,
		logger:         logger,
	}, nil
}

// Run starts the program and blocks until the user quits or ctx is done.
// The session must already be hydrated: the start page follows the current
// snapshot.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	sessions := t.services.SessionService
	snapshot := sessions.Snapshot()

	menu := NewMenuModel()
	if snapshot.Notice != "" {
		t.logger.Info().Str("func", "TUI.newRootModel").Str("notice", snapshot.Notice).Msg("showing hydration notice")
		menu.notice = noticeMsg{text: snapshot.Notice, warn: true}
		sessions.ClearNotice()
	}

	pages := map[string]tea.Model{
		pageMenu:     menu,
		pageLogin:    NewLoginModel(ctx, sessions),
		pageRegister: NewRegisterModel(ctx, sessions),
		pageForgot:   NewForgotModel(ctx, sessions),
		pageGoogle:   NewOAuthModel(ctx, sessions, models.ProviderGoogle),
		pageApple:    NewOAuthModel(ctx, sessions, models.ProviderApple),
		pageHome:     NewHomeModel(ctx, sessions, t.services.HealthService, t.healthInterval),
	}

	start := pageMenu
	if snapshot.State == models.StateAuthenticated {
		start = pageHome
	}

	return NewRootModel(pages, start, t.services.AppInfoService.GetBuildInfo(ctx))
}
