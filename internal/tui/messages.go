// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/aimemo/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to open Page. Payload, when set, is delivered
// to the page after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// noticeMsg is a one-line status shown on the menu.
type noticeMsg struct {
	text string
	warn bool
}

// authResultMsg finishes any sign-in form.
type authResultMsg struct {
	session models.Session
	err     error
}

type forgotResultMsg struct {
	message string
	err     error
}

type loggedOutMsg struct {
	err error
}

// healthMsg and healthTickMsg carry the sequence number of the polling
// loop that produced them; the home page ignores stale ones.
type healthMsg struct {
	seq    int
	report models.HealthReport
}

type healthTickMsg struct {
	seq int
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

const statusTimeout = 3 * time.Second

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func signInCmd(ctx context.Context, call func(context.Context) (models.Session, error)) tea.Cmd {
	return func() tea.Msg {
		session, err := call(ctx)
		return authResultMsg{session: session, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
