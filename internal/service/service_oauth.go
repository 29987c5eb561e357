// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/models"
)

// providerConfig describes how id_tokens of one provider are checked.
type providerConfig struct {
	clientID string
	jwksURL  string
	issuers  []string
}

type jwksVerifier struct {
	providers map[models.AuthProvider]providerConfig

	mu       sync.Mutex
	keyfuncs map[models.AuthProvider]keyfunc.Keyfunc

	// ctx bounds the background refresh of every key set.
	ctx        context.Context
	cancel     context.CancelFunc
	newKeyfunc func(ctx context.Context, urls []string) (keyfunc.Keyfunc, error)

	now    func() time.Time
	logger *logger.Logger
}

// NewJWKSVerifier returns an [IDTokenVerifier] that checks RS256 id_tokens
// against the providers' published key sets. Key sets are fetched on first
// use and refreshed in the background until Close. A provider without a
// client ID is rejected with [ErrProviderNotConfigured].
func NewJWKSVerifier(cfg config.OAuth, logger *logger.Logger) IDTokenVerifier {
	ctx, cancel := context.WithCancel(context.Background())

	return &jwksVerifier{
		providers: map[models.AuthProvider]providerConfig{
			models.ProviderGoogle: {
				clientID: cfg.GoogleClientID,
				jwksURL:  orDefault(cfg.GoogleJWKSURL, config.DefaultGoogleJWKSURL),
				issuers:  []string{"accounts.google.com", "https://accounts.google.com"},
			},
			models.ProviderApple: {
				clientID: cfg.AppleClientID,
				jwksURL:  orDefault(cfg.AppleJWKSURL, config.DefaultAppleJWKSURL),
				issuers:  []string{"https://appleid.apple.com"},
			},
		},
		keyfuncs:   make(map[models.AuthProvider]keyfunc.Keyfunc),
		ctx:        ctx,
		cancel:     cancel,
		newKeyfunc: keyfunc.NewDefaultCtx,
		now:        time.Now,
		logger:     logger,
	}
}

// Close stops the background key set refresh.
func (v *jwksVerifier) Close() error {
	v.cancel()
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// providerClaims is the id_token payload. email_verified is a bool at
// Google and a string at Apple.
type providerClaims struct {
	Email         string `json:"email"`
	EmailVerified any    `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	jwt.RegisteredClaims
}

// Verify implements [IDTokenVerifier].
func (v *jwksVerifier) Verify(ctx context.Context, provider models.AuthProvider, idToken string) (models.IDTokenClaims, error) {
	cfg, ok := v.providers[provider]
	if !ok || cfg.clientID == "" {
		return models.IDTokenClaims{}, ErrProviderNotConfigured
	}

	kf, err := v.keyfunc(provider, cfg)
	if err != nil {
		return models.IDTokenClaims{}, err
	}

	claims := &providerClaims{}
	_, err = jwt.ParseWithClaims(idToken, claims, func(token *jwt.Token) (any, error) {
		key, err := kf.KeyfuncCtx(ctx)(token)
		if err != nil && !hasKeys(ctx, kf) {
			return nil, fmt.Errorf("%w: %w", ErrJWKSUnavailable, err)
		}
		return key, err
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(cfg.clientID),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil {
		if errors.Is(err, ErrJWKSUnavailable) {
			return models.IDTokenClaims{}, err
		}
		return models.IDTokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}

	if !slices.Contains(cfg.issuers, claims.Issuer) {
		return models.IDTokenClaims{}, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidIDToken, claims.Issuer)
	}

	return models.IDTokenClaims{
		Subject:       claims.Subject,
		Email:         claims.Email,
		EmailVerified: parseBoolClaim(claims.EmailVerified),
		Name:          firstNonEmpty(claims.Name, claims.GivenName, claims.FamilyName),
	}, nil
}

func parseBoolClaim(v any) *bool {
	switch value := v.(type) {
	case bool:
		return &value
	case string:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil
		}
		return &b
	default:
		return nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// keyfunc returns the key set of provider, creating it on first use. A
// failed creation is not cached.
func (v *jwksVerifier) keyfunc(provider models.AuthProvider, cfg providerConfig) (keyfunc.Keyfunc, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if kf, ok := v.keyfuncs[provider]; ok {
		return kf, nil
	}

	kf, err := v.newKeyfunc(v.ctx, []string{cfg.jwksURL})
	if err != nil {
		v.logger.Err(err).Str("func", "*jwksVerifier.keyfunc").Str("provider", string(provider)).Msg("failed to load key set")
		return nil, fmt.Errorf("%w: %w", ErrJWKSUnavailable, err)
	}

	v.keyfuncs[provider] = kf
	return kf, nil
}

// hasKeys reports whether the key set holds at least one key. An empty set
// means the provider could not be reached so far.
func hasKeys(ctx context.Context, kf keyfunc.Keyfunc) bool {
	keys, err := kf.Storage().KeyReadAll(ctx)
	return err == nil && len(keys) > 0
}
