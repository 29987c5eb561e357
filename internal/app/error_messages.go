// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// AiMemo server handlers and the client error mapping.
//
// All Msg* constants are human-readable strings written into the "error"
// or "message" field of JSON response bodies. The client shows them
// verbatim, so the wording is part of the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is not a JSON object.
	MsgInvalidJSON = "Invalid JSON payload"

	// MsgEmailAndPasswordRequired is returned by register and login when
	// either field is blank.
	MsgEmailAndPasswordRequired = "email and password are required"

	// MsgEmailAlreadyRegistered is returned by register on a duplicate email.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInvalidCredentials is returned by login for an unknown email, an
	// account without a password or a wrong password alike.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgEmailRequired is returned by forgot-password without an email.
	MsgEmailRequired = "Email is required"

	// MsgForgotPasswordAccepted is the 202 body of forgot-password. It never
	// reveals whether the account exists.
	MsgForgotPasswordAccepted = "If an account exists for that email, a reset link will be sent."

	// MsgForgotPasswordDefault is shown by the client when the server
	// accepted the request without a message.
	MsgForgotPasswordDefault = "If an account exists, a reset link will be sent."

	// MsgTooManyRequests is returned when the reset limiter refuses a request.
	MsgTooManyRequests = "Too many requests, try again later"

	// MsgMissingBearerToken is returned by /auth/me without an
	// Authorization header.
	MsgMissingBearerToken = "missing bearer token"

	// MsgInvalidToken is returned for a bearer token that fails signature,
	// issuer or expiry checks.
	MsgInvalidToken = "invalid token"

	// MsgUserNotFound is returned by /auth/me when the token subject no
	// longer exists.
	MsgUserNotFound = "user not found"

	// MsgIDTokenRequired is returned by the OAuth endpoints without id_token.
	MsgIDTokenRequired = "id_token is required"

	// MsgInvalidIDToken is returned when the provider id_token cannot be
	// verified.
	MsgInvalidIDToken = "Invalid id_token"

	// MsgProviderTokenMissingSubject is returned for an id_token without "sub".
	MsgProviderTokenMissingSubject = "Provider token missing subject"

	// MsgGoogleTokenMissingEmail is returned for a Google id_token without
	// an email claim.
	MsgGoogleTokenMissingEmail = "Google token missing email"

	// MsgGoogleEmailNotVerified is returned when Google marks the email as
	// unverified.
	MsgGoogleEmailNotVerified = "Google email not verified"

	// MsgProviderNotConfigured is returned when the provider has no client ID.
	MsgProviderNotConfigured = "OAuth provider is not configured"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is returned for a known route with the wrong verb.
	MsgMethodNotAllowed = "method not allowed"

	// MsgServerUnreachable is shown by the client on transport failures.
	MsgServerUnreachable = "Cannot reach the AiMemo server"

	// MsgSessionExpired is the notice shown after hydration discarded a
	// stored session.
	MsgSessionExpired = "Your session has expired. Please sign in again."

	// MsgSessionUnreadable is the notice shown when the stored session
	// could not be read.
	MsgSessionUnreadable = "Saved session could not be read. Please sign in again."

	// MsgSessionUnverified is the notice shown when the stored session could
	// not be confirmed because the server was unreachable.
	MsgSessionUnverified = "Could not verify your saved session. Please sign in again."
)
