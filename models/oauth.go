// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IDTokenClaims are the identity claims taken from a verified provider
// id_token.
type IDTokenClaims struct {
	Subject string
	Email   string
	// EmailVerified is nil when the provider did not send the claim.
	EmailVerified *bool
	Name          string
}
