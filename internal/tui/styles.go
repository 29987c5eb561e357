// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	badgeStyle        = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	badgeHealthyStyle = badgeStyle.Background(lipgloss.Color("28")).Foreground(lipgloss.Color("231"))
	badgeWarningStyle = badgeStyle.Background(lipgloss.Color("214")).Foreground(lipgloss.Color("16"))
	badgeErrorStyle   = badgeStyle.Background(lipgloss.Color("160")).Foreground(lipgloss.Color("231"))
	badgeUnknownStyle = badgeStyle.Faint(true)
)
