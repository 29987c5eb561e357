// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/aimemo/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionService owns the client session lifecycle. It keeps the current
// user and token in memory and mirrors every change to the keystore.
// All methods are safe for concurrent use.
type SessionService interface {
	// Hydrate restores the persisted session. It never fails: any problem
	// clears the keystore, settles the state to anonymous and records a
	// notice in the returned snapshot.
	Hydrate(ctx context.Context) models.SessionSnapshot

	// Login signs in with email and password.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Register creates an email account and signs in.
	Register(ctx context.Context, creds models.Credentials) (models.Session, error)

	// SignInWithApple exchanges an Apple identity token for a session.
	SignInWithApple(ctx context.Context, req models.AppleSignIn) (models.Session, error)

	// SignInWithGoogle exchanges a Google id_token for a session.
	SignInWithGoogle(ctx context.Context, idToken string) (models.Session, error)

	// ForgotPassword asks the server to send a reset link and returns the
	// message to show.
	ForgotPassword(ctx context.Context, email string) (string, error)

	// Logout clears memory and keystore without calling the server. Memory
	// is always cleared, even when the keystore fails.
	Logout(ctx context.Context) error

	// Snapshot returns the current state.
	Snapshot() models.SessionSnapshot

	// ClearNotice drops the hydration notice once it has been shown.
	ClearNotice()
}

// ClientHealthService turns GET /health into a [models.HealthReport].
type ClientHealthService interface {
	Check(ctx context.Context) models.HealthReport
}
