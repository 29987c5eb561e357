// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthStateOf(t *testing.T) {
	tests := []struct {
		status string
		want   HealthState
	}{
		{"ok", HealthHealthy},
		{"degraded", HealthWarning},
		{"error", HealthError},
		{"", HealthError},
		{"OK", HealthError},
		{"maintenance", HealthError},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, HealthStateOf(tt.status))
		})
	}
}

func TestUser_Label(t *testing.T) {
	assert.Equal(t, "Ann", User{ID: "1", Email: "a@b.c", DisplayName: "Ann"}.Label())
	assert.Equal(t, "a@b.c", User{ID: "1", Email: "a@b.c"}.Label())
	assert.Equal(t, "1", User{ID: "1"}.Label())
}

func TestUser_PublicDropsServerFields(t *testing.T) {
	u := User{ID: "1", Email: "a@b.c", Provider: ProviderEmail, PasswordHash: "hash", ProviderSubject: "sub"}

	p := u.Public()

	assert.Empty(t, p.PasswordHash)
	assert.Empty(t, p.ProviderSubject)
	assert.Equal(t, "a@b.c", p.Email)
}

func TestSession_Complete(t *testing.T) {
	assert.True(t, Session{}.IsZero())
	assert.False(t, Session{Token: "t"}.Complete())
	assert.True(t, Session{Token: "t", User: User{ID: "1"}}.Complete())
}

func TestAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("AiMemo", "", "2026-01-01", "")

	assert.Equal(t, "AiMemo", info.AppName())
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
