// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/mock"
	"github.com/MKhiriev/aimemo/models"
)

var testSession = models.Session{
	Token: "header.payload.sig",
	User: models.User{
		ID:          "0190f5e2-0000-7000-8000-000000000001",
		Email:       "alice@example.com",
		DisplayName: "Alice",
		Provider:    models.ProviderEmail,
	},
}

func TestLocalSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	ks := NewMemoryKeystore()
	repo := NewLocalSessionRepository(ks, logger.Nop())

	withSecrets := testSession
	withSecrets.User.PasswordHash = "must-not-persist"
	require.NoError(t, repo.Save(ctx, withSecrets))

	raw, err := ks.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.NotContains(t, raw, "must-not-persist")

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testSession, loaded)
}

func TestLocalSessionRepository_Load(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		want    models.Session
		wantErr error
	}{
		{name: "empty keystore", values: nil, wantErr: ErrLocalSessionNotFound},
		{name: "blank token", values: map[string]string{KeyToken: "  "}, wantErr: ErrLocalSessionNotFound},
		{name: "user only", values: map[string]string{KeyUser: `{"id":"1"}`}, wantErr: ErrLocalSessionNotFound},
		{name: "token without user", values: map[string]string{KeyToken: "tok"}, want: models.Session{Token: "tok"}},
		{name: "malformed user", values: map[string]string{KeyToken: "tok", KeyUser: "{"}, wantErr: ErrCorruptedSession},
		{name: "user without id", values: map[string]string{KeyToken: "tok", KeyUser: `{"email":"a@b.c"}`}, wantErr: ErrCorruptedSession},
		{
			name:   "complete",
			values: map[string]string{KeyToken: "tok", KeyUser: `{"id":"1","email":"a@b.c","provider":"google"}`},
			want:   models.Session{Token: "tok", User: models.User{ID: "1", Email: "a@b.c", Provider: models.ProviderGoogle}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			ks := NewMemoryKeystore()
			for k, v := range tt.values {
				require.NoError(t, ks.Set(ctx, k, v))
			}

			got, err := NewLocalSessionRepository(ks, logger.Nop()).Load(ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalSessionRepository_Clear(t *testing.T) {
	ctx := context.Background()
	ks := NewMemoryKeystore()
	repo := NewLocalSessionRepository(ks, logger.Nop())

	require.NoError(t, repo.Save(ctx, testSession))
	require.NoError(t, repo.Clear(ctx))

	_, err := ks.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = ks.Get(ctx, KeyUser)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// clearing twice is fine
	assert.NoError(t, repo.Clear(ctx))
}

func TestLocalSessionRepository_ClearAttemptsBothKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	ks := mock.NewMockKeystore(ctrl)
	repo := NewLocalSessionRepository(ks, logger.Nop())
	ctx := context.Background()

	diskFull := errors.New("disk full")
	gomock.InOrder(
		ks.EXPECT().Delete(ctx, KeyToken).Return(diskFull),
		ks.EXPECT().Delete(ctx, KeyUser).Return(nil),
	)

	err := repo.Clear(ctx)
	assert.ErrorIs(t, err, diskFull)
}

func TestLocalSessionRepository_ClearJoinsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	ks := mock.NewMockKeystore(ctrl)
	repo := NewLocalSessionRepository(ks, logger.Nop())
	ctx := context.Background()

	errToken := errors.New("token locked")
	errUser := errors.New("user locked")
	ks.EXPECT().Delete(ctx, KeyToken).Return(errToken)
	ks.EXPECT().Delete(ctx, KeyUser).Return(errUser)

	err := repo.Clear(ctx)
	assert.ErrorIs(t, err, errToken)
	assert.ErrorIs(t, err, errUser)
}
