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

// OAuthModel signs in with an identity token obtained from the provider
// out of band. Apple only shares the email and name on the first
// authorization, so the Apple page accepts them alongside the token.
type OAuthModel struct {
	ctx      context.Context
	sessions service.SessionService
	provider models.AuthProvider

	form formModel
}

func NewOAuthModel(ctx context.Context, sessions service.SessionService, provider models.AuthProvider) *OAuthModel {
	fields := []formField{newFormField("ID token", "paste the identity token", 8192, true)}
	title := "SIGN IN WITH GOOGLE"
	if provider == models.ProviderApple {
		title = "SIGN IN WITH APPLE"
		fields = append(fields,
			newFormField("Email", "optional", 254, false),
			newFormField("Name", "optional", 100, false),
		)
	}

	return &OAuthModel{
		ctx:      ctx,
		sessions: sessions,
		provider: provider,
		form: formModel{
			title:  title,
			action: "Sign in",
			fields: fields,
		},
	}
}

func (m *OAuthModel) Init() tea.Cmd {
	return m.form.reset()
}

func (m *OAuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		return m, signInCmd(m.ctx, m.signIn())
	}

	return m, cmd
}

func (m *OAuthModel) View() string {
	return m.form.view()
}

func (m *OAuthModel) signIn() func(context.Context) (models.Session, error) {
	idToken := strings.TrimSpace(m.form.value(0))
	if m.provider != models.ProviderApple {
		return func(ctx context.Context) (models.Session, error) {
			return m.sessions.SignInWithGoogle(ctx, idToken)
		}
	}

	req := models.AppleSignIn{
		IDToken:     idToken,
		Email:       strings.TrimSpace(m.form.value(1)),
		DisplayName: strings.TrimSpace(m.form.value(2)),
	}
	return func(ctx context.Context) (models.Session, error) {
		return m.sessions.SignInWithApple(ctx, req)
	}
}
