// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmailAndPasswordRequired = errors.New("email and password are required")
	ErrEmailRequired            = errors.New("Email is required")
	ErrInvalidEmail             = errors.New("invalid email address")
	ErrPasswordTooShort         = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong          = errors.New("password must be at most 72 bytes")
	ErrDisplayNameTooLong       = errors.New("display name must be at most 255 characters")
	ErrIDTokenRequired          = errors.New("id_token is required")
	ErrUnsupportedProvider      = errors.New("unsupported provider")
)
