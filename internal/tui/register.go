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

// RegisterModel is the sign-up page. Registration signs the user in, so it
// finishes with the same [authResultMsg] as [LoginModel].
type RegisterModel struct {
	ctx      context.Context
	sessions service.SessionService

	form formModel
}

func NewRegisterModel(ctx context.Context, sessions service.SessionService) *RegisterModel {
	return &RegisterModel{
		ctx:      ctx,
		sessions: sessions,
		form: formModel{
			title:  "CREATE ACCOUNT",
			action: "Create account",
			fields: []formField{
				newFormField("Name", "optional", 100, false),
				newFormField("Email", "you@example.com", 254, false),
				newFormField("Password", "at least 8 characters", 256, true),
			},
		},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return m.form.reset()
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			DisplayName: strings.TrimSpace(m.form.value(0)),
			Email:       strings.TrimSpace(m.form.value(1)),
			Password:    m.form.value(2),
		}
		return m, signInCmd(m.ctx, func(ctx context.Context) (models.Session, error) {
			return m.sessions.Register(ctx, creds)
		})
	}

	return m, cmd
}

func (m *RegisterModel) View() string {
	return m.form.view()
}
