// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/aimemo/internal/app"
	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/store"
	"github.com/MKhiriev/aimemo/internal/utils"
	"github.com/MKhiriev/aimemo/internal/validators"
	"github.com/MKhiriev/aimemo/models"
)

// authService is the concrete implementation of [AuthService].
// Passwords are bcrypt hashed; access tokens are HS256 JWTs.
type authService struct {
	userRepository store.UserRepository
	resetLimiter   store.ResetLimiter
	verifier       IDTokenVerifier
	validator      validators.Validator
	ids            *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService]. All state is read-only after
// construction, so the service is safe for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	resetLimiter store.ResetLimiter,
	verifier IDTokenVerifier,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		resetLimiter:   resetLimiter,
		verifier:       verifier,
		validator:      validators.NewAuthValidator(),
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates an email account.
//
// Returns a validators error for bad input or [ErrEmailAlreadyRegistered].
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, err
	}

	email := validators.NormalizeEmail(req.Email)
	if _, err := a.userRepository.FindUserByEmail(ctx, email); err == nil {
		return models.AuthResponse{}, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.AuthResponse{}, fmt.Errorf("lookup user by email: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Email:        email,
		PasswordHash: hash,
		Provider:     models.ProviderEmail,
		DisplayName:  strings.TrimSpace(req.DisplayName),
	})
	if errors.Is(err, store.ErrEmailAlreadyRegistered) {
		return models.AuthResponse{}, ErrEmailAlreadyRegistered
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.Register").Str("user_id", user.ID).Msg("user registered")
	return a.issue(user)
}

// Login verifies email and password. Unknown emails, accounts without a
// password and wrong passwords all return [ErrInvalidCredentials].
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, validators.NormalizeEmail(req.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("lookup user by email: %w", err)
	}

	if user.PasswordHash == "" || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return a.issue(user)
}

// OAuth signs in with a provider id_token. The account is looked up by
// (provider, subject) and then by email; a new one is created when neither
// matches. Blank subject, email and display name of an existing account are
// filled from the token.
func (a *authService) OAuth(ctx context.Context, req models.OAuthRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, err
	}

	claims, err := a.verifier.Verify(ctx, req.Provider, req.IDToken)
	if err != nil {
		log.Warn().Err(err).Str("func", "*authService.OAuth").Str("provider", string(req.Provider)).Msg("id_token rejected")
		return models.AuthResponse{}, err
	}

	if req.Provider == models.ProviderGoogle {
		if claims.Email == "" {
			return models.AuthResponse{}, ErrGoogleTokenMissingEmail
		}
		if claims.EmailVerified != nil && !*claims.EmailVerified {
			return models.AuthResponse{}, ErrGoogleEmailNotVerified
		}
	}
	if claims.Subject == "" {
		return models.AuthResponse{}, ErrProviderTokenMissingSubject
	}

	email := validators.NormalizeEmail(firstNonEmpty(claims.Email, req.EmailHint))
	name := firstNonEmpty(strings.TrimSpace(req.DisplayName), claims.Name)

	user, err := a.findOAuthUser(ctx, req.Provider, claims.Subject, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		user, err = a.userRepository.CreateUser(ctx, models.User{
			ID:              a.ids.Generate(),
			Email:           email,
			Provider:        req.Provider,
			ProviderSubject: claims.Subject,
			DisplayName:     name,
		})
		if errors.Is(err, store.ErrEmailAlreadyRegistered) {
			return models.AuthResponse{}, ErrEmailAlreadyRegistered
		}
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("create oauth user: %w", err)
		}

		log.Info().Str("func", "*authService.OAuth").Str("user_id", user.ID).Str("provider", string(req.Provider)).Msg("user registered")
		return a.issue(user)
	}
	if err != nil {
		return models.AuthResponse{}, err
	}

	changed := false
	if user.ProviderSubject == "" {
		user.ProviderSubject = claims.Subject
		changed = true
	}
	if email != "" && user.Email == "" {
		user.Email = email
		changed = true
	}
	if name != "" && user.DisplayName == "" {
		user.DisplayName = name
		changed = true
	}

	if changed {
		user, err = a.userRepository.UpdateUser(ctx, user)
		if errors.Is(err, store.ErrEmailAlreadyRegistered) {
			return models.AuthResponse{}, ErrEmailAlreadyRegistered
		}
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("update oauth user: %w", err)
		}
	}

	return a.issue(user)
}

func (a *authService) findOAuthUser(ctx context.Context, provider models.AuthProvider, subject, email string) (models.User, error) {
	user, err := a.userRepository.FindUserByProvider(ctx, provider, subject)
	if err == nil || !errors.Is(err, store.ErrNoUserWasFound) {
		return user, err
	}

	if email == "" {
		return models.User{}, store.ErrNoUserWasFound
	}
	return a.userRepository.FindUserByEmail(ctx, email)
}

// ForgotPassword implements [AuthService]. The limiter counts per email; a
// limiter outage lets the request through.
func (a *authService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (string, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return "", err
	}
	email := validators.NormalizeEmail(req.Email)

	allowed, retryAfter, err := a.resetLimiter.Allow(ctx, email)
	if err != nil {
		log.Warn().Err(err).Str("func", "*authService.ForgotPassword").Msg("reset limiter unavailable")
	} else if !allowed {
		return "", fmt.Errorf("%w: retry after %s", ErrTooManyRequests, retryAfter.Round(time.Second))
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info().Str("func", "*authService.ForgotPassword").Str("user_id", user.ID).Msg("password reset requested")
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Debug().Str("func", "*authService.ForgotPassword").Msg("password reset requested for unknown email")
	default:
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("lookup user by email failed")
	}

	return app.MsgForgotPasswordAccepted, nil
}

// Me implements [AuthService].
func (a *authService) Me(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("lookup user by id: %w", err)
	}
	return user.Public(), nil
}

// ParseToken implements [AuthService].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return token, nil
}

func (a *authService) issue(user models.User) (models.AuthResponse, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		a.logger.Err(err).Str("func", "*authService.issue").Msg("error creating token")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AuthResponse{AccessToken: token.SignedString, User: user.Public()}, nil
}
