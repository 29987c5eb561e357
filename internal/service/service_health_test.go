// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/mock"
	"github.com/MKhiriev/aimemo/models"
)

func TestHealthService_Check(t *testing.T) {
	down := errors.New("connection refused")

	tests := []struct {
		name       string
		dbErr      error
		limiterErr error
		wantStatus string
	}{
		{name: "all up", wantStatus: models.HealthStatusOK},
		{name: "limiter down", limiterErr: down, wantStatus: models.HealthStatusDegraded},
		{name: "database down", dbErr: down, wantStatus: models.HealthStatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mock.NewMockUserRepository(ctrl)
			limiter := mock.NewMockResetLimiter(ctrl)

			users.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
				_, ok := ctx.Deadline()
				assert.True(t, ok, "probe must be bounded")
				return tt.dbErr
			})
			if tt.dbErr == nil {
				limiter.EXPECT().Ping(gomock.Any()).Return(tt.limiterErr)
			}

			resp := NewHealthService("aimemo", users, limiter, logger.Nop()).Check(context.Background())

			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, "aimemo", resp.App)
		})
	}
}
