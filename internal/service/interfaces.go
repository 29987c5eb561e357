// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/aimemo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService implements the account endpoints of the backend.
type AuthService interface {
	// Register creates an email account and issues a token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login checks email and password and issues a token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// OAuth verifies a provider id_token, finds or creates the account and
	// issues a token.
	OAuth(ctx context.Context, req models.OAuthRequest) (models.AuthResponse, error)

	// ForgotPassword accepts a reset request and returns the neutral
	// message. It never reveals whether the account exists.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (string, error)

	// Me returns the account with userID.
	Me(ctx context.Context, userID string) (models.User, error)

	// ParseToken validates an access token issued by this server.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// HealthService probes the backend dependencies.
type HealthService interface {
	// Check returns "ok" when everything answers, "degraded" when only the
	// limiter store is down and "error" when the database is down.
	Check(ctx context.Context) models.HealthResponse
}

// IDTokenVerifier verifies OAuth id_tokens of a provider.
type IDTokenVerifier interface {
	Verify(ctx context.Context, provider models.AuthProvider, idToken string) (models.IDTokenClaims, error)
}
