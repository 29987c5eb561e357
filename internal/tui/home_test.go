// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/aimemo/internal/mock"
	"github.com/MKhiriev/aimemo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type homeFixture struct {
	home     *HomeModel
	sessions *mock.MockSessionService
	health   *mock.MockClientHealthService
	copied   []string
}

func newHomeFixture(t *testing.T, interval time.Duration) *homeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &homeFixture{
		sessions: mock.NewMockSessionService(ctrl),
		health:   mock.NewMockClientHealthService(ctrl),
	}
	f.home = NewHomeModel(context.Background(), f.sessions, f.health, interval)
	f.home.copyToClipboard = func(s string) error {
		f.copied = append(f.copied, s)
		return nil
	}
	return f
}

func (f *homeFixture) start(t *testing.T, report models.HealthReport) {
	t.Helper()
	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{State: models.StateAuthenticated, Session: ada})
	f.health.EXPECT().Check(gomock.Any()).Return(report)

	cmd := f.home.Init()
	require.NotNil(t, cmd)
	f.home.Update(cmd())
}

func TestHomeModel_InitShowsSessionAndHealth(t *testing.T) {
	f := newHomeFixture(t, time.Minute)
	f.start(t, models.HealthReport{State: models.HealthHealthy, Status: "ok", App: "aimemo", CheckedAt: time.Now()})

	view := f.home.View()
	assert.Contains(t, view, "Signed in as Ada")
	assert.Contains(t, view, "ada@example.com")
	assert.Contains(t, view, "email")
	assert.Contains(t, view, "healthy")
	assert.Contains(t, view, "aimemo reports ok")
}

func TestHomeModel_HealthSchedulesNextTick(t *testing.T) {
	f := newHomeFixture(t, time.Minute)
	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{Session: ada})

	cmd := f.home.Init()
	require.NotNil(t, cmd)
	assert.Equal(t, 1, f.home.seq)

	_, tick := f.home.Update(healthMsg{seq: 1, report: models.HealthReport{State: models.HealthWarning, Status: "degraded"}})
	assert.NotNil(t, tick)
	assert.Equal(t, models.HealthWarning, f.home.report.State)

	f.health.EXPECT().Check(gomock.Any()).Return(models.HealthReport{State: models.HealthError, Status: "error"})
	_, refresh := f.home.Update(healthTickMsg{seq: 1})
	require.NotNil(t, refresh)
	assert.Equal(t, 2, f.home.seq)

	msg, ok := refresh().(healthMsg)
	require.True(t, ok)
	assert.Equal(t, 2, msg.seq)
	assert.Equal(t, models.HealthError, msg.report.State)
}

func TestHomeModel_StaleLoopsIgnored(t *testing.T) {
	f := newHomeFixture(t, time.Minute)
	f.start(t, models.HealthReport{State: models.HealthHealthy, Status: "ok"})

	// Manual refresh starts a new loop.
	f.home.Update(keyPress("r"))
	require.Equal(t, 2, f.home.seq)

	_, cmd := f.home.Update(healthMsg{seq: 1, report: models.HealthReport{State: models.HealthError}})
	assert.Nil(t, cmd)
	assert.Equal(t, models.HealthHealthy, f.home.report.State)

	_, cmd = f.home.Update(healthTickMsg{seq: 1})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, f.home.seq)
}

func TestHomeModel_NoIntervalNoTick(t *testing.T) {
	f := newHomeFixture(t, 0)
	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{Session: ada})
	f.home.Init()

	_, cmd := f.home.Update(healthMsg{seq: 1, report: models.HealthReport{State: models.HealthHealthy}})
	assert.Nil(t, cmd)
}

func TestHomeModel_UnreachableServer(t *testing.T) {
	f := newHomeFixture(t, time.Minute)
	f.start(t, models.HealthReport{State: models.HealthError, Err: errors.New("Cannot reach the AiMemo server")})

	view := f.home.View()
	assert.Contains(t, view, "error")
	assert.Contains(t, view, "Cannot reach the AiMemo server")
}

func TestHomeModel_CopyToken(t *testing.T) {
	f := newHomeFixture(t, time.Minute)
	f.start(t, models.HealthReport{State: models.HealthHealthy})

	_, cmd := f.home.Update(keyPress("y"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, copiedMsg{}, msg)
	assert.Equal(t, []string{ada.Token}, f.copied)

	_, clearCmd := f.home.Update(msg)
	assert.NotNil(t, clearCmd)
	assert.Contains(t, f.home.View(), "Token copied to clipboard")

	f.home.Update(clearStatusMsg{})
	assert.NotContains(t, f.home.View(), "Token copied")
}

func TestHomeModel_CopyFailures(t *testing.T) {
	f := newHomeFixture(t, time.Minute)
	f.sessions.EXPECT().Snapshot().Return(models.SessionSnapshot{})
	f.home.Init()

	_, cmd := f.home.Update(keyPress("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, copiedMsg{err: errNoToken}, cmd())
	assert.Empty(t, f.copied)

	f.home.session = ada
	f.home.copyToClipboard = func(string) error { return errors.New("no clipboard utility") }
	_, cmd = f.home.Update(keyPress("y"))
	f.home.Update(cmd())
	assert.Contains(t, f.home.View(), "Copy failed: no clipboard utility")
}

func TestHomeModel_Logout(t *testing.T) {
	f := newHomeFixture(t, time.Minute)
	f.start(t, models.HealthReport{State: models.HealthHealthy})

	f.sessions.EXPECT().Logout(gomock.Any()).Return(nil)

	_, cmd := f.home.Update(keyPress("l"))
	require.NotNil(t, cmd)
	assert.Contains(t, f.home.View(), "Signing out...")

	_, again := f.home.Update(keyPress("l"))
	assert.Nil(t, again)

	assert.Equal(t, loggedOutMsg{}, cmd())
}

func TestHomeModel_Quit(t *testing.T) {
	f := newHomeFixture(t, time.Minute)
	_, cmd := f.home.Update(keyPress("q"))
	assert.True(t, isQuit(t, cmd))
}
