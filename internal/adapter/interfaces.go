// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the aimemo client uses to
// talk to the backend.
//
// [Request] is the single JSON-over-HTTP primitive: it never panics, and
// every failure comes back in [Result].Err as one of a transport error
// ([ErrTransport]), a non-2xx response ([*APIError], which unwraps to a
// status sentinel such as [ErrUnauthorized]) or an undecodable body
// ([ErrMalformedResponse]). [ServerAdapter] wraps it with one typed method
// per endpoint.
package adapter

import (
	"context"

	"github.com/MKhiriev/aimemo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the REST surface of the backend as seen by the
// client. Implementations never hold session state: the bearer token is
// passed explicitly to the calls that need it.
type ServerAdapter interface {
	// Health calls GET /health.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Register calls POST /auth/register and returns the issued token and
	// the new user.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login calls POST /auth/login.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// ForgotPassword calls POST /auth/forgot-password. The returned message
	// may be empty if the server sent no body.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordResponse, error)

	// Me calls GET /auth/me with token as bearer and returns the user the
	// token belongs to.
	Me(ctx context.Context, token string) (models.User, error)

	// OAuthApple exchanges an Apple identity token for a session.
	OAuthApple(ctx context.Context, req models.AppleOAuthRequest) (models.AuthResponse, error)

	// OAuthGoogle exchanges a Google identity token for a session.
	OAuthGoogle(ctx context.Context, req models.GoogleOAuthRequest) (models.AuthResponse, error)
}
