// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.True(t, IsUUID(id))
}

func TestIsUUID(t *testing.T) {
	assert.False(t, IsUUID(""))
	assert.False(t, IsUUID("42"))
	assert.False(t, IsUUID("urn:uuid:0190a8f1-7c1e-7d3c-9d0e-8f1a2b3c4d5e"))
	assert.True(t, IsUUID("0190a8f1-7c1e-7d3c-9d0e-8f1a2b3c4d5e"))
}
