// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthProvider identifies how an account was created and how it signs in.
type AuthProvider string

const (
	ProviderEmail  AuthProvider = "email"
	ProviderGoogle AuthProvider = "google"
	ProviderApple  AuthProvider = "apple"
)

// Valid reports whether p is one of the known providers.
func (p AuthProvider) Valid() bool {
	switch p {
	case ProviderEmail, ProviderGoogle, ProviderApple:
		return true
	}
	return false
}

// User represents an account entity used for authentication.
// Only ID, Email, DisplayName and Provider travel over the wire; the rest
// is persistence-layer state that must never leave the server.
type User struct {
	// ID is the UUID of the account.
	ID string `json:"id"`

	// Email is empty for OAuth accounts whose provider withheld it.
	Email string `json:"email"`

	// DisplayName is the optional human-readable name shown in UI.
	DisplayName string `json:"display_name,omitempty"`

	// Provider is the sign-in method that created the account.
	Provider AuthProvider `json:"provider"`

	// PasswordHash is the bcrypt hash for email accounts.
	PasswordHash string `json:"-"`

	// ProviderSubject is the stable `sub` claim of the OAuth provider.
	ProviderSubject string `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Label returns the best available name for greeting the user.
func (u User) Label() string {
	switch {
	case u.DisplayName != "":
		return u.DisplayName
	case u.Email != "":
		return u.Email
	default:
		return u.ID
	}
}

// Public returns a copy of u stripped of server-only fields.
func (u User) Public() User {
	return User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Provider:    u.Provider,
	}
}
