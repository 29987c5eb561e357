// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyRegistered is returned when an INSERT or UPDATE hits the
	// unique constraint on users.email.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrProviderSubjectTaken is returned when another account is already
	// linked to the same (provider, provider_subject) pair.
	ErrProviderSubjectTaken = errors.New("provider subject already linked")

	// ErrNoUserWasFound is returned when a lookup matches no user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrLocalSessionNotFound is returned when the keystore holds no
	// complete session.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrCorruptedSession is returned when the stored user cannot be decoded.
	ErrCorruptedSession = errors.New("stored session is corrupted")

	// ErrUnknownKeystoreDriver is returned by [NewClientStorages] for a
	// driver name it does not know.
	ErrUnknownKeystoreDriver = errors.New("unknown keystore driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
