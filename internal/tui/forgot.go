// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/aimemo/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// ForgotModel asks the server for a password reset link. The page stays
// open after success and shows the server's message.
type ForgotModel struct {
	ctx      context.Context
	sessions service.SessionService

	form formModel
}

func NewForgotModel(ctx context.Context, sessions service.SessionService) *ForgotModel {
	return &ForgotModel{
		ctx:      ctx,
		sessions: sessions,
		form: formModel{
			title:  "FORGOT PASSWORD",
			action: "Send reset link",
			fields: []formField{
				newFormField("Email", "you@example.com", 254, false),
			},
		},
	}
}

func (m *ForgotModel) Init() tea.Cmd {
	return m.form.reset()
}

func (m *ForgotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(forgotResultMsg); ok {
		if result.err != nil {
			m.form.fail(result.err)
			return m, nil
		}
		m.form.submitting = false
		m.form.info = result.message
		return m, nil
	}

	action, cmd := m.form.handle(msg)
	switch action {
	case formBack:
		return m, navigate(pageMenu)
	case formSubmit:
		m.form.begin()
		return m, m.cmdForgot(strings.TrimSpace(m.form.value(0)))
	}

	return m, cmd
}

func (m *ForgotModel) View() string {
	return m.form.view()
}

func (m *ForgotModel) cmdForgot(email string) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions

	return func() tea.Msg {
		message, err := sessions.ForgotPassword(ctx, email)
		return forgotResultMsg{message: message, err: err}
	}
}
