// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

// ForgotPasswordRequest is the body of POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// AppleOAuthRequest is the body of POST /auth/oauth/apple.
// Apple only shares email and name on the very first authorization,
// so the client forwards them as hints.
type AppleOAuthRequest struct {
	IDToken     string `json:"id_token"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// GoogleOAuthRequest is the body of POST /auth/oauth/google.
type GoogleOAuthRequest struct {
	IDToken string `json:"id_token"`
}

// OAuthRequest is the provider-neutral form of an OAuth exchange used by
// the server-side auth service.
type OAuthRequest struct {
	Provider    AuthProvider
	IDToken     string
	EmailHint   string
	DisplayName string
}

// AuthResponse is returned by every endpoint that signs a user in.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// MeResponse is returned by GET /auth/me.
type MeResponse struct {
	User User `json:"user"`
}

// ForgotPasswordResponse is returned by POST /auth/forgot-password.
type ForgotPasswordResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
