// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/aimemo/internal/service"
	"github.com/MKhiriev/aimemo/models"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the email sign-in page. A successful [authResultMsg] is
// handled by [RootModel], which opens the home page; failures come back
// here and are shown under the form.
type LoginModel struct {
	ctx      context.Context
	sessions service.SessionService

	form formModel
}

func NewLoginModel(ctx context.Context, sessions service.SessionService) *LoginModel {
	return &LoginModel{
		ctx:      ctx,
		sessions: sessions,
		form: formModel{
			title:  "SIGN IN",
			action: "Sign in",
			fields: []formField{
				newFormField("Email", "you@example.com", 254, false),
				newFormField("Password", "password", 256, true),
			},
		},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return m.form.reset()
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		if result.err != nil {
			m.form.fail(result.err)
		}
		return m, nil
	}

	action, cmd := m.form.handle(msg)
	switch action {
	case formBack:
		return m, navigate(pageMenu)
	case formSubmit:
		m.form.begin()
		creds := models.Credentials{
			Email:    strings.TrimSpace(m.form.value(0)),
			Password: m.form.value(1),
		}
		return m, signInCmd(m.ctx, func(ctx context.Context) (models.Session, error) {
			return m.sessions.Login(ctx, creds)
		})
	}

	return m, cmd
}

func (m *LoginModel) View() string {
	return m.form.view()
}
