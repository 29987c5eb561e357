// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/aimemo/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names understood by [NavigateTo].
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageForgot   = "forgot"
	pageGoogle   = "google"
	pageApple    = "apple"
	pageHome     = "home"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) moves between the auth pages and home as the session changes
// 5) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentPage string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentPage: startPage,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "v":
			if r.currentPage == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg.Page, msg.Payload)

	case authResultMsg:
		if msg.err == nil {
			return r.navigate(pageHome, nil)
		}

	case loggedOutMsg:
		notice := noticeMsg{text: "Signed out"}
		if msg.err != nil {
			notice = noticeMsg{text: "Signed out, but the saved session could not be removed: " + humanizeError(msg.err), warn: true}
		}
		return r.navigate(pageMenu, notice)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("AIMEMO", "", "")
	}
	return r.current.View()
}

// navigate opens page, runs its Init and then delivers payload to it.
func (r RootModel) navigate(page string, payload tea.Msg) (tea.Model, tea.Cmd) {
	next, exists := r.pages[page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.currentPage = page

	var cmds []tea.Cmd
	if cmd := r.current.Init(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if payload != nil {
		cmds = append(cmds, func() tea.Msg { return payload })
	}

	switch len(cmds) {
	case 0:
		return r, nil
	case 1:
		return r, cmds[0]
	default:
		return r, tea.Sequence(cmds...)
	}
}
