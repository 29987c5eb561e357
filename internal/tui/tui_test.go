// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/mock"
	"github.com/MKhiriev/aimemo/internal/service"
	"github.com/MKhiriev/aimemo/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ada = models.Session{
	User: models.User{
		ID:          "0192f0c4-7a7e-7c3e-9d1a-3f1d2b6a9e01",
		Email:       "ada@example.com",
		DisplayName: "Ada",
		Provider:    models.ProviderEmail,
	},
	Token: "header.payload.signature",
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

type tuiFixture struct {
	tui      *TUI
	sessions *mock.MockSessionService
	health   *mock.MockClientHealthService
}

func newTUIFixture(t *testing.T) tuiFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	sessions := mock.NewMockSessionService(ctrl)
	health := mock.NewMockClientHealthService(ctrl)
	appInfo, err := service.NewAppInfoService(models.NewAppBuildInfo("aimemo", "1.2.3", "2026-10-01", "abc123"), logger.Nop())
	require.NoError(t, err)

	ui, err := New(&service.ClientServices{
		SessionService: sessions,
		HealthService:  health,
		AppInfoService: appInfo,
	}, config.ClientWorkers{HealthInterval: time.Minute}, logger.Nop())
	require.NoError(t, err)

	return tuiFixture{tui: ui, sessions: sessions, health: health}
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(nil, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = New(&service.ClientServices{}, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)
}

func TestNewRootModel_AnonymousStartsOnMenuAndShowsNotice(t *testing.T) {
	f := newTUIFixture(t)
	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{
		State:  models.StateAnonymous,
		Notice: "Your session has expired. Please sign in again.",
	})
	f.sessions.EXPECT().ClearNotice().Times(1)

	root := f.tui.newRootModel(context.Background())

	assert.Equal(t, pageMenu, root.currentPage)
	assert.Nil(t, root.Init())
	assert.Contains(t, root.View(), "Your session has expired. Please sign in again.")
}

func TestNewRootModel_AnonymousWithoutNoticeKeepsNotice(t *testing.T) {
	f := newTUIFixture(t)
	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{State: models.StateAnonymous})
	f.sessions.EXPECT().ClearNotice().Times(0)

	root := f.tui.newRootModel(context.Background())

	assert.Equal(t, pageMenu, root.currentPage)
	assert.Contains(t, root.View(), "Sign in with Google")
}

func TestNewRootModel_AuthenticatedStartsOnHome(t *testing.T) {
	f := newTUIFixture(t)
	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{State: models.StateAuthenticated, Session: ada}).Times(2)
	f.health.EXPECT().Check(gomock.Any()).Return(models.HealthReport{State: models.HealthHealthy, Status: "ok"})

	root := f.tui.newRootModel(context.Background())
	require.Equal(t, pageHome, root.currentPage)

	cmd := root.Init()
	require.NotNil(t, cmd)
	msg, ok := cmd().(healthMsg)
	require.True(t, ok)
	assert.Equal(t, models.HealthHealthy, msg.report.State)
	assert.Contains(t, root.View(), "Ada")
}

func TestRootModel_SignInOpensHome(t *testing.T) {
	f := newTUIFixture(t)
	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{State: models.StateAnonymous})
	root := f.tui.newRootModel(context.Background())

	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{State: models.StateAuthenticated, Session: ada})
	f.health.EXPECT().Check(gomock.Any()).Return(models.HealthReport{State: models.HealthWarning, Status: "degraded"})

	root, cmd := update(t, root, authResultMsg{session: ada})
	assert.Equal(t, pageHome, root.currentPage)

	require.NotNil(t, cmd)
	_, ok := cmd().(healthMsg)
	assert.True(t, ok)
}

func TestRootModel_SignInFailureStaysOnForm(t *testing.T) {
	f := newTUIFixture(t)
	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{State: models.StateAnonymous})
	root := f.tui.newRootModel(context.Background())

	root, _ = update(t, root, NavigateTo{Page: pageLogin})
	require.Equal(t, pageLogin, root.currentPage)

	root, cmd := update(t, root, authResultMsg{err: errors.New("Invalid credentials")})
	assert.Nil(t, cmd)
	assert.Equal(t, pageLogin, root.currentPage)
	assert.Contains(t, root.View(), "Invalid credentials")
}

func TestRootModel_LogoutReturnsToMenu(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantNotice string
		wantWarn   bool
	}{
		{
			name:       "clean logout",
			wantNotice: "Signed out",
		},
		{
			name:       "keystore failure",
			err:        errors.New("Could not update the saved session"),
			wantNotice: "Signed out, but the saved session could not be removed: Could not update the saved session",
			wantWarn:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTUIFixture(t)
			f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{State: models.StateAuthenticated, Session: ada})
			root := f.tui.newRootModel(context.Background())

			root, cmd := update(t, root, loggedOutMsg{err: tt.err})
			assert.Equal(t, pageMenu, root.currentPage)

			require.NotNil(t, cmd)
			notice, ok := cmd().(noticeMsg)
			require.True(t, ok)
			assert.Equal(t, tt.wantNotice, notice.text)
			assert.Equal(t, tt.wantWarn, notice.warn)

			root, _ = update(t, root, notice)
			assert.Contains(t, root.View(), tt.wantNotice)
		})
	}
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	f := newTUIFixture(t)
	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{State: models.StateAnonymous})
	root := f.tui.newRootModel(context.Background())

	root, _ = update(t, root, keyPress("v"))
	view := root.View()
	assert.Contains(t, view, "ABOUT")
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")

	// Keys other than esc are swallowed while the window is open.
	root, cmd := update(t, root, keyPress("enter"))
	assert.Nil(t, cmd)
	assert.True(t, root.showBuildInfo)

	root, _ = update(t, root, keyPress("esc"))
	assert.False(t, root.showBuildInfo)
	assert.NotContains(t, root.View(), "ABOUT")
}

func TestRootModel_BuildInfoOnlyOnMenu(t *testing.T) {
	f := newTUIFixture(t)
	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{State: models.StateAnonymous})
	root := f.tui.newRootModel(context.Background())

	root, _ = update(t, root, NavigateTo{Page: pageLogin})
	root, _ = update(t, root, keyPress("v"))

	assert.False(t, root.showBuildInfo)
	login := root.current.(*LoginModel)
	assert.Equal(t, "v", login.form.value(0))
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	f := newTUIFixture(t)
	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{State: models.StateAnonymous})
	root := f.tui.newRootModel(context.Background())

	_, cmd := update(t, root, keyPress("ctrl+c"))
	assert.True(t, isQuit(t, cmd))
}

func TestRootModel_UnknownPageIgnored(t *testing.T) {
	f := newTUIFixture(t)
	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{State: models.StateAnonymous})
	root := f.tui.newRootModel(context.Background())

	root, cmd := update(t, root, NavigateTo{Page: "settings"})
	assert.Nil(t, cmd)
	assert.Equal(t, pageMenu, root.currentPage)
}

func TestRootModel_EmptyRouter(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{}, pageMenu, models.NewAppBuildInfo("aimemo", "", "", ""))

	assert.Nil(t, root.Init())
	assert.Contains(t, root.View(), "AIMEMO")

	_, cmd := update(t, root, keyPress("x"))
	assert.Nil(t, cmd)
}
