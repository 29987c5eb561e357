// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/aimemo/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{
	ID:       "0190a8f1-7c1e-7d3c-9d0e-8f1a2b3c4d5e",
	Email:    "ann@example.com",
	Provider: models.ProviderEmail,
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("aimemo", testUser, time.Hour, "secret")
	require.NoError(t, err)

	assert.NotEmpty(t, token.String())
	assert.Equal(t, testUser.ID, token.UserID)
	assert.Equal(t, testUser.Email, token.Email)
	assert.Equal(t, models.ProviderEmail, token.Provider)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		user     models.User
		duration time.Duration
		key      string
	}{
		{name: "no issuer", user: testUser, duration: time.Hour, key: "k"},
		{name: "no duration", issuer: "i", user: testUser, key: "k"},
		{name: "no key", issuer: "i", user: testUser, duration: time.Hour},
		{name: "no user id", issuer: "i", duration: time.Hour, key: "k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.user, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issued, err := GenerateJWTToken("aimemo", testUser, time.Hour, "secret")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.String(), "secret", "aimemo")
	require.NoError(t, err)

	assert.Equal(t, testUser.ID, parsed.UserID)
	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, testUser.ID, userID)
	assert.Equal(t, testUser.Email, parsed.Email)
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("aimemo", testUser, time.Hour, "secret")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("aimemo", testUser, time.Nanosecond, "secret")
	require.NoError(t, err)
	time.Sleep(time.Second)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "aimemo",
		Subject:   testUser.ID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{name: "wrong key", token: valid.String(), key: "other", issuer: "aimemo"},
		{name: "wrong issuer", token: valid.String(), key: "secret", issuer: "someone-else"},
		{name: "expired", token: expired.String(), key: "secret", issuer: "aimemo"},
		{name: "alg none", token: noneToken, key: "secret", issuer: "aimemo"},
		{name: "malformed", token: "not.a.jwt", key: "secret", issuer: "aimemo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeekExpiry(t *testing.T) {
	issued, err := GenerateJWTToken("aimemo", testUser, time.Hour, "secret")
	require.NoError(t, err)

	exp, ok := PeekExpiry(issued.String())
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	_, ok = PeekExpiry("opaque-session-token")
	assert.False(t, ok)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, ok = PeekExpiry(noExp)
	assert.False(t, ok)
}
