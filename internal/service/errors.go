// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Server-side business errors. Handlers map them to HTTP statuses.
var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidToken           = errors.New("invalid token")
	ErrTokenCreationFailed    = errors.New("token creation failed")
	ErrTooManyRequests        = errors.New("too many password reset requests")

	ErrInvalidIDToken              = errors.New("invalid id_token")
	ErrProviderNotConfigured       = errors.New("oauth provider is not configured")
	ErrProviderTokenMissingSubject = errors.New("provider token missing subject")
	ErrGoogleTokenMissingEmail     = errors.New("google token missing email")
	ErrGoogleEmailNotVerified      = errors.New("google email not verified")
	ErrJWKSUnavailable             = errors.New("provider key set unavailable")

	ErrAppNameIsNotSpecified = errors.New("app name is not specified")
)

// Client-side business errors. Errors returned by the client services wrap
// one of these together with the message the user should see.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrRateLimited        = errors.New("rate limited")
	ErrServerFailure      = errors.New("server failure")
	ErrServerUnreachable  = errors.New("server unreachable")
	ErrUnexpectedResponse = errors.New("unexpected server response")
	ErrLocalStorage       = errors.New("local storage failure")
)
