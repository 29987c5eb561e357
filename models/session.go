// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState is the lifecycle stage of the client session.
type SessionState int

const (
	// StateAnonymous means no user is signed in.
	StateAnonymous SessionState = iota
	// StateHydrating means the persisted session is being restored.
	StateHydrating
	// StateAuthenticated means both user and token are present.
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateHydrating:
		return "hydrating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the authenticated user together with the bearer token that
// proves it. The pair is either complete or zero.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// IsZero reports whether the session carries no credentials at all.
func (s Session) IsZero() bool {
	return s.Token == "" && s.User.ID == ""
}

// Complete reports whether both halves of the session are present.
func (s Session) Complete() bool {
	return s.Token != "" && s.User.ID != ""
}

// SessionSnapshot is a consistent read of the client session.
type SessionSnapshot struct {
	State   SessionState
	Session Session

	// Notice explains why a previously stored session was discarded
	// during hydration. Empty when nothing was discarded.
	Notice string
}

// Credentials is the transient input of the email sign-in and sign-up forms.
// It is never persisted.
type Credentials struct {
	Email       string
	Password    string
	DisplayName string
}

// AppleSignIn is what the Apple identity SDK hands to the client.
type AppleSignIn struct {
	IDToken     string
	Email       string
	DisplayName string
}
