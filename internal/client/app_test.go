// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/mock"
	"github.com/MKhiriev/aimemo/internal/service"
	"github.com/MKhiriev/aimemo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingUI struct {
	runs int
	err  error

	// hydrated is checked when the UI starts.
	hydrated func() bool
	sawReady bool
}

func (u *recordingUI) Run(ctx context.Context) error {
	u.runs++
	if u.hydrated != nil {
		u.sawReady = u.hydrated()
	}
	return u.err
}

func TestNewApp_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.ClientServices{SessionService: mock.NewMockSessionService(ctrl)}

	_, err := NewApp(nil, &recordingUI{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoSessionService)

	_, err = NewApp(&service.ClientServices{}, &recordingUI{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoSessionService)

	_, err = NewApp(services, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoUI)

	app, err := NewApp(services, &recordingUI{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_Run_HydratesBeforeUI(t *testing.T) {
	tests := []struct {
		name     string
		snapshot models.SessionSnapshot
	}{
		{
			name:     "anonymous",
			snapshot: models.SessionSnapshot{State: models.StateAnonymous},
		},
		{
			name: "restored",
			snapshot: models.SessionSnapshot{
				State:   models.StateAuthenticated,
				Session: models.Session{User: models.User{ID: "u-1"}, Token: "t"},
			},
		},
		{
			name: "discarded with notice",
			snapshot: models.SessionSnapshot{
				State:  models.StateAnonymous,
				Notice: "Your session has expired. Please sign in again.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sessions := mock.NewMockSessionService(ctrl)

			hydrated := false
			sessions.EXPECT().Hydrate(gomock.Any()).DoAndReturn(func(context.Context) models.SessionSnapshot {
				hydrated = true
				return tt.snapshot
			})

			ui := &recordingUI{hydrated: func() bool { return hydrated }}
			app, err := NewApp(&service.ClientServices{SessionService: sessions}, ui, logger.Nop())
			require.NoError(t, err)

			require.NoError(t, app.Run(context.Background()))
			assert.Equal(t, 1, ui.runs)
			assert.True(t, ui.sawReady)
		})
	}
}

func TestApp_Run_UIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionService(ctrl)
	sessions.EXPECT().Hydrate(gomock.Any()).Return(models.SessionSnapshot{})

	uiErr := errors.New("could not open a TTY")
	app, err := NewApp(&service.ClientServices{SessionService: sessions}, &recordingUI{err: uiErr}, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorIs(t, err, uiErr)
}
