// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuModel_Navigation(t *testing.T) {
	m := NewMenuModel()

	m.Update(keyPress("up"))
	assert.Equal(t, 0, m.idx)

	m.Update(keyPress("down"))
	m.Update(keyPress("j"))
	assert.Equal(t, 2, m.idx)

	for range len(m.items) {
		m.Update(keyPress("down"))
	}
	assert.Equal(t, len(m.items)-1, m.idx)

	m.Update(keyPress("k"))
	assert.Equal(t, len(m.items)-2, m.idx)
}

func TestMenuModel_EnterOpensSelectedPage(t *testing.T) {
	tests := []struct {
		name  string
		moves int
		want  string
	}{
		{name: "sign in", moves: 0, want: pageLogin},
		{name: "create account", moves: 1, want: pageRegister},
		{name: "forgot password", moves: 2, want: pageForgot},
		{name: "google", moves: 3, want: pageGoogle},
		{name: "apple", moves: 4, want: pageApple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel()
			for range tt.moves {
				m.Update(keyPress("down"))
			}

			_, cmd := m.Update(keyPress("enter"))
			require.NotNil(t, cmd)
			assert.Equal(t, NavigateTo{Page: tt.want}, cmd())
		})
	}
}

func TestMenuModel_NoticeClearedOnSelect(t *testing.T) {
	m := NewMenuModel()
	m.Update(noticeMsg{text: "Signed out"})
	assert.Contains(t, m.View(), "OK: Signed out")

	m.Update(keyPress("enter"))
	assert.NotContains(t, m.View(), "Signed out")
}

func TestMenuModel_WarningNotice(t *testing.T) {
	m := NewMenuModel()
	m.Update(noticeMsg{text: "Your saved session could not be read.", warn: true})

	assert.Contains(t, m.View(), "! Your saved session could not be read.")
}

func TestMenuModel_Quit(t *testing.T) {
	m := NewMenuModel()
	_, cmd := m.Update(keyPress("q"))
	assert.True(t, isQuit(t, cmd))
}
