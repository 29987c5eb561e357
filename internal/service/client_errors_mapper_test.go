// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/aimemo/internal/adapter"
	"github.com/MKhiriev/aimemo/internal/app"
)

func TestMapAdapterError(t *testing.T) {
	other := errors.New("something else")

	tests := []struct {
		name        string
		err         error
		wantKind    error
		wantMessage string
	}{
		{name: "bad request", err: &adapter.APIError{Status: http.StatusBadRequest, Message: "email and password are required"}, wantKind: ErrInvalidInput, wantMessage: "email and password are required"},
		{name: "unauthorized", err: &adapter.APIError{Status: http.StatusUnauthorized, Message: "X"}, wantKind: ErrUnauthenticated, wantMessage: "X"},
		{name: "not found", err: &adapter.APIError{Status: http.StatusNotFound, Message: "User not found"}, wantKind: ErrAccountNotFound, wantMessage: "User not found"},
		{name: "conflict", err: &adapter.APIError{Status: http.StatusConflict, Message: "Email already registered"}, wantKind: ErrAccountExists, wantMessage: "Email already registered"},
		{name: "rate limited", err: &adapter.APIError{Status: http.StatusTooManyRequests, Message: "slow down"}, wantKind: ErrRateLimited, wantMessage: "slow down"},
		{name: "server failure", err: &adapter.APIError{Status: http.StatusInternalServerError, Message: "Request failed (500)"}, wantKind: ErrServerFailure, wantMessage: "Request failed (500)"},
		{name: "wrapped api error", err: fmt.Errorf("login: %w", &adapter.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"}), wantKind: ErrUnauthenticated, wantMessage: "Invalid credentials"},
		{name: "transport", err: fmt.Errorf("%w: timeout", adapter.ErrTransport), wantKind: ErrServerUnreachable, wantMessage: app.MsgServerUnreachable},
		{name: "malformed", err: fmt.Errorf("%w: /auth/me", adapter.ErrMalformedResponse), wantKind: ErrUnexpectedResponse, wantMessage: "Unexpected response from the server"},
		{name: "unknown", err: other, wantKind: other, wantMessage: "something else"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)

			assert.ErrorIs(t, got, tt.wantKind)
			assert.ErrorIs(t, got, tt.err)
			assert.EqualError(t, got, tt.wantMessage)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}
