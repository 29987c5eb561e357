// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIDCtxKey(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{
			name:   "present",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, "0190a8f1-7c1e-7d3c-9d0e-8f1a2b3c4d5e"),
			want:   "0190a8f1-7c1e-7d3c-9d0e-8f1a2b3c4d5e",
			wantOK: true,
		},
		{name: "missing", ctx: context.Background()},
		{name: "empty", ctx: context.WithValue(context.Background(), UserIDCtxKey, "")},
		{name: "wrong type", ctx: context.WithValue(context.Background(), UserIDCtxKey, int64(42))},
		{name: "different key", ctx: context.WithValue(context.Background(), contextKey("other"), "id")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
