// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/aimemo/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldCredentials requires both email and password to be non-blank.
	FieldCredentials = "credentials"

	// FieldEmail requires a syntactically valid address.
	FieldEmail = "email"

	// FieldEmailRequired requires a non-blank email only.
	FieldEmailRequired = "email_required"

	// FieldPassword enforces the password length policy.
	FieldPassword = "password"

	// FieldDisplayName bounds the optional display name.
	FieldDisplayName = "display_name"

	// FieldIDToken requires a non-blank provider id_token.
	FieldIDToken = "id_token"

	// FieldProvider requires an OAuth provider.
	FieldProvider = "provider"
)

const (
	MinPasswordLength    = 8
	MaxPasswordBytes     = 72
	MaxDisplayNameLength = 255
)

// AuthValidator validates authentication inputs.
type AuthValidator struct{}

// NewAuthValidator returns the [Validator] for auth requests.
func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate dispatches on the request type. Without fields, every rule of
// the type is applied:
//   - [models.LoginRequest]: credentials.
//   - [models.RegisterRequest], [models.Credentials]: credentials, email,
//     password, display name.
//   - [models.ForgotPasswordRequest]: email presence.
//   - [models.OAuthRequest]: provider, id_token, display name.
func (v *AuthValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return validateCredentials(value.Email, value.Password, "", defaults(fields, FieldCredentials))
	case *models.LoginRequest:
		return validateCredentials(value.Email, value.Password, "", defaults(fields, FieldCredentials))

	case models.RegisterRequest:
		return validateCredentials(value.Email, value.Password, value.DisplayName,
			defaults(fields, FieldCredentials, FieldEmail, FieldPassword, FieldDisplayName))
	case *models.RegisterRequest:
		return validateCredentials(value.Email, value.Password, value.DisplayName,
			defaults(fields, FieldCredentials, FieldEmail, FieldPassword, FieldDisplayName))

	case models.Credentials:
		return validateCredentials(value.Email, value.Password, value.DisplayName,
			defaults(fields, FieldCredentials, FieldEmail, FieldPassword, FieldDisplayName))

	case models.ForgotPasswordRequest:
		return validateCredentials(value.Email, "", "", defaults(fields, FieldEmailRequired))
	case *models.ForgotPasswordRequest:
		return validateCredentials(value.Email, "", "", defaults(fields, FieldEmailRequired))

	case models.OAuthRequest:
		return validateOAuth(value, defaults(fields, FieldProvider, FieldIDToken, FieldDisplayName))
	case *models.OAuthRequest:
		return validateOAuth(*value, defaults(fields, FieldProvider, FieldIDToken, FieldDisplayName))

	default:
		return ErrUnsupportedType
	}
}

func defaults(fields []string, all ...string) []string {
	if len(fields) == 0 {
		return all
	}
	return fields
}

func validateCredentials(email, password, displayName string, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldCredentials:
			if strings.TrimSpace(email) == "" || password == "" {
				return ErrEmailAndPasswordRequired
			}
		case FieldEmailRequired:
			if strings.TrimSpace(email) == "" {
				return ErrEmailRequired
			}
		case FieldEmail:
			if !IsEmail(email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if len(password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldDisplayName:
			if utf8.RuneCountInString(strings.TrimSpace(displayName)) > MaxDisplayNameLength {
				return ErrDisplayNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateOAuth(req models.OAuthRequest, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldProvider:
			if req.Provider != models.ProviderGoogle && req.Provider != models.ProviderApple {
				return ErrUnsupportedProvider
			}
		case FieldIDToken:
			if strings.TrimSpace(req.IDToken) == "" {
				return ErrIDTokenRequired
			}
		case FieldDisplayName:
			if utf8.RuneCountInString(strings.TrimSpace(req.DisplayName)) > MaxDisplayNameLength {
				return ErrDisplayNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsEmail reports whether s is a bare address such as "a@b.c". Display-name
// forms like "Alice <a@b.c>" are rejected.
func IsEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}

// NormalizeEmail trims and lowercases an address for storage and lookup.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
