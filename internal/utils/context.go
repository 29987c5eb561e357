// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the aimemo
// client and server: typed context keys, JSON response writing, the resty
// HTTP client, JWT issuing and parsing, password hashing and UUIDs.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// authenticated user ID (a UUID string).
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the user identifier stored by the auth
// middleware. ok is false when the value is missing, empty or of another
// type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}
