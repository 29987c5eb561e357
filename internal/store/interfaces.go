// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/aimemo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts in the server database.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row.
	// Returns [ErrEmailAlreadyRegistered] on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns [ErrNoUserWasFound] when nothing matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// FindUserByEmail returns [ErrNoUserWasFound] when nothing matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByProvider looks an account up by its OAuth identity.
	FindUserByProvider(ctx context.Context, provider models.AuthProvider, subject string) (models.User, error)

	// UpdateUser overwrites email, display name and provider subject of the
	// account with user.ID and bumps updated_at.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// Ping checks the database connection.
	Ping(ctx context.Context) error
}

// ResetLimiter throttles password-reset requests per key.
type ResetLimiter interface {
	// Allow registers one attempt for key and reports whether it is within
	// the window budget. retryAfter is set when the attempt is refused.
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)

	// Ping checks the limiter store. A limiter without a store always
	// succeeds.
	Ping(ctx context.Context) error

	// Enabled reports whether a store backs the limiter.
	Enabled() bool
}

// LocalSessionRepository keeps the client session in a [Keystore].
type LocalSessionRepository interface {
	// Save writes both token and user.
	Save(ctx context.Context, session models.Session) error

	// Load returns [ErrLocalSessionNotFound] when no token is stored and
	// [ErrCorruptedSession] when the stored user is not valid JSON. A token
	// without a user is returned with a zero user.
	Load(ctx context.Context) (models.Session, error)

	// Clear deletes both keys. It is safe on an empty keystore.
	Clear(ctx context.Context) error
}
