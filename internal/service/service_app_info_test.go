// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/models"
)

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("AiMemo", "1.0.0", "2026-01-01", "abc"), logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "AiMemo", svc.GetAppName(context.Background()))
	assert.Equal(t, "1.0.0", svc.GetBuildInfo(context.Background()).BuildVersion())
}

func TestNewAppInfoService_EmptyName(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("", "1.0.0", "", ""), logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrAppNameIsNotSpecified)
}

func TestGetBuildInfo_MissingFieldsAreNA(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("AiMemo", "", "", ""), logger.Nop())
	require.NoError(t, err)

	info := svc.GetBuildInfo(context.Background())
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
