// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formAction int

const (
	formNone formAction = iota
	formBack
	formSubmit
)

type formField struct {
	label string
	input textinput.Model
}

func newFormField(label, placeholder string, charLimit int, secret bool) formField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = charLimit
	input.Width = 40
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	return formField{label: label, input: input}
}

// formModel is the input table shared by the sign-in, sign-up and reset
// pages. Pages own the submit logic and read values by field index.
type formModel struct {
	title  string
	action string
	fields []formField

	focus      int
	submitting bool
	errMsg     string
	info       string
}

func (f *formModel) reset() tea.Cmd {
	for i := range f.fields {
		f.fields[i].input.Reset()
		f.fields[i].input.Blur()
	}
	f.focus = 0
	f.submitting = false
	f.errMsg = ""
	f.info = ""
	f.fields[0].input.Focus()
	return textinput.Blink
}

func (f *formModel) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *formModel) begin() {
	f.errMsg = ""
	f.info = ""
	f.submitting = true
}

func (f *formModel) fail(err error) {
	f.submitting = false
	f.errMsg = humanizeError(err)
}

// handle processes navigation keys and forwards everything else to the
// focused input.
func (f *formModel) handle(msg tea.Msg) (formAction, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			f.submitting = false
			f.errMsg = ""
			return formBack, nil
		case key.Matches(keyMsg, keys.tab):
			f.focusNext()
			return formNone, nil
		case key.Matches(keyMsg, keys.backtab):
			f.focusPrev()
			return formNone, nil
		case key.Matches(keyMsg, keys.enter):
			if f.submitting {
				return formNone, nil
			}
			return formSubmit, nil
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return formNone, cmd
}

func (f *formModel) focusNext() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *formModel) focusPrev() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *formModel) view() string {
	labelWidth := lipgloss.Width("Field")
	for _, field := range f.fields {
		if w := lipgloss.Width(field.label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Value\n", labelWidth, "Field"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for _, field := range f.fields {
		b.WriteString(fmt.Sprintf("%-*s │ [", labelWidth, field.label))
		b.WriteString(field.input.View())
		b.WriteString("]\n")
	}

	if f.submitting {
		b.WriteString("\n[" + f.action + "...]\n")
	} else {
		b.WriteString("\n[" + f.action + "]\n")
	}

	if f.info != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(f.info))
		b.WriteString("\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return renderPage(f.title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
