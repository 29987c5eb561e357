// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/aimemo/internal/service"
	"github.com/MKhiriev/aimemo/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HomeModel is the signed-in page. It summarises the session, polls the
// server health every interval and offers logout and token copy.
type HomeModel struct {
	ctx      context.Context
	sessions service.SessionService
	health   service.ClientHealthService
	interval time.Duration

	session models.Session
	report  models.HealthReport

	// seq identifies the active polling loop.
	seq        int
	loggingOut bool
	status     string

	copyToClipboard func(string) error
}

func NewHomeModel(ctx context.Context, sessions service.SessionService, health service.ClientHealthService, interval time.Duration) *HomeModel {
	return &HomeModel{
		ctx:             ctx,
		sessions:        sessions,
		health:          health,
		interval:        interval,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Init reloads the session and starts a fresh polling loop. Loops of
// earlier visits die on their next tick.
func (m *HomeModel) Init() tea.Cmd {
	m.session = m.sessions.Snapshot().Session
	m.report = models.HealthReport{}
	m.loggingOut = false
	m.status = ""
	return m.refreshHealth()
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case healthMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.report = msg.report
		return m, m.scheduleTick(msg.seq)

	case healthTickMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		return m, m.refreshHealth()

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Token copied to clipboard"
		}
		return m, clearStatusAfter(statusTimeout)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.refresh):
			return m, m.refreshHealth()
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyToken()
		case key.Matches(msg, keys.logout):
			if m.loggingOut {
				return m, nil
			}
			m.loggingOut = true
			return m, m.cmdLogout()
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	user := m.session.User

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Signed in as %s\n\n", titleStyle.Render(user.Label())))
	b.WriteString(fmt.Sprintf("%-9s │ %s\n", "Email", valueOrDash(user.Email)))
	b.WriteString(fmt.Sprintf("%-9s │ %s\n", "Provider", valueOrDash(string(user.Provider))))
	b.WriteString(fmt.Sprintf("%-9s │ %s\n", "Account", valueOrDash(user.ID)))
	b.WriteString(fmt.Sprintf("%-9s │ %s\n", "Token", valueOrDash(fitText(m.session.Token, 32))))
	b.WriteString("\n")
	b.WriteString("Server  ")
	b.WriteString(renderHealthBadge(m.report))
	b.WriteString("  ")
	b.WriteString(healthDetail(m.report))
	if !m.report.CheckedAt.IsZero() {
		b.WriteString(helpStyle.Render(" (" + m.report.CheckedAt.Format(time.TimeOnly) + ")"))
	}
	b.WriteString("\n")

	if m.loggingOut {
		b.WriteString("\nSigning out...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "r: refresh │ y: copy token │ l: sign out │ q: quit")
}

func (m *HomeModel) refreshHealth() tea.Cmd {
	m.seq++
	seq := m.seq
	ctx := m.ctx
	health := m.health

	return func() tea.Msg {
		return healthMsg{seq: seq, report: health.Check(ctx)}
	}
}

func (m *HomeModel) scheduleTick(seq int) tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return healthTickMsg{seq: seq} })
}

func (m *HomeModel) cmdCopyToken() tea.Cmd {
	token := m.session.Token
	copyToClipboard := m.copyToClipboard

	return func() tea.Msg {
		if token == "" {
			return copiedMsg{err: errNoToken}
		}
		return copiedMsg{err: copyToClipboard(token)}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions

	return func() tea.Msg {
		return loggedOutMsg{err: sessions.Logout(ctx)}
	}
}
