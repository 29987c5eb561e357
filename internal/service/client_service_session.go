// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/aimemo/internal/adapter"
	"github.com/MKhiriev/aimemo/internal/app"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/store"
	"github.com/MKhiriev/aimemo/internal/utils"
	"github.com/MKhiriev/aimemo/internal/validators"
	"github.com/MKhiriev/aimemo/models"
)

// sessionService implements [SessionService].
//
// opMu serializes mutating operations so two sign-ins can never interleave
// their keystore writes. mu guards the in-memory snapshot and is held only
// while reading or swapping it.
type sessionService struct {
	repository    store.LocalSessionRepository
	serverAdapter adapter.ServerAdapter
	validator     validators.Validator
	revalidate    bool
	now           func() time.Time

	opMu sync.Mutex

	mu      sync.RWMutex
	state   models.SessionState
	session models.Session
	notice  string

	logger *logger.Logger
}

// NewSessionService builds an anonymous [SessionService]. With revalidate
// set, [SessionService.Hydrate] confirms the stored token with GET /auth/me.
func NewSessionService(
	repository store.LocalSessionRepository,
	serverAdapter adapter.ServerAdapter,
	validator validators.Validator,
	revalidate bool,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		repository:    repository,
		serverAdapter: serverAdapter,
		validator:     validator,
		revalidate:    revalidate,
		now:           time.Now,
		state:         models.StateAnonymous,
		logger:        logger,
	}
}

func (s *sessionService) Hydrate(ctx context.Context) models.SessionSnapshot {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.setSnapshot(models.StateHydrating, models.Session{}, "")

	stored, err := s.repository.Load(ctx)
	switch {
	case errors.Is(err, store.ErrLocalSessionNotFound):
		s.logger.Debug().Str("func", "*sessionService.Hydrate").Msg("no stored session")
		return s.discard(ctx, "", nil)
	case err != nil:
		return s.discard(ctx, app.MsgSessionUnreadable, err)
	}

	// Opaque tokens carry no readable expiry and are left to the server.
	if exp, ok := utils.PeekExpiry(stored.Token); ok && !exp.After(s.now()) {
		return s.discard(ctx, app.MsgSessionExpired, fmt.Errorf("stored token expired at %s", exp.Format(time.RFC3339)))
	}

	if s.revalidate || stored.User.ID == "" {
		user, err := s.serverAdapter.Me(ctx, stored.Token)
		if err != nil {
			notice := app.MsgSessionExpired
			if !errors.Is(err, adapter.ErrUnauthorized) && !errors.Is(err, adapter.ErrNotFound) {
				notice = app.MsgSessionUnverified
			}
			return s.discard(ctx, notice, mapAdapterError(err))
		}

		stored.User = user
		if err = s.repository.Save(ctx, stored); err != nil {
			return s.discard(ctx, app.MsgSessionUnreadable, err)
		}
	}

	s.setSnapshot(models.StateAuthenticated, stored, "")
	s.logger.Info().
		Str("func", "*sessionService.Hydrate").
		Str("user_id", stored.User.ID).
		Bool("revalidated", s.revalidate).
		Msg("session restored")

	return s.Snapshot()
}

// discard clears the keystore and settles the state to anonymous with
// notice. cause is only logged.
func (s *sessionService) discard(ctx context.Context, notice string, cause error) models.SessionSnapshot {
	if cause != nil {
		s.logger.Warn().Err(cause).Str("func", "*sessionService.discard").Msg("stored session discarded")
	}

	if err := s.repository.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "*sessionService.discard").Msg("failed to clear keystore")
	}

	s.setSnapshot(models.StateAnonymous, models.Session{}, notice)
	return s.Snapshot()
}

func (s *sessionService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := s.validator.Validate(ctx, creds, validators.FieldCredentials); err != nil {
		return models.Session{}, invalidInput(err)
	}

	return s.signIn(ctx, "Login", func() (models.AuthResponse, error) {
		return s.serverAdapter.Login(ctx, models.LoginRequest{Email: creds.Email, Password: creds.Password})
	})
}

func (s *sessionService) Register(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	creds.DisplayName = strings.TrimSpace(creds.DisplayName)
	if err := s.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, invalidInput(err)
	}

	return s.signIn(ctx, "Register", func() (models.AuthResponse, error) {
		return s.serverAdapter.Register(ctx, models.RegisterRequest{
			Email:       creds.Email,
			Password:    creds.Password,
			DisplayName: creds.DisplayName,
		})
	})
}

func (s *sessionService) SignInWithApple(ctx context.Context, req models.AppleSignIn) (models.Session, error) {
	oauth := models.OAuthRequest{
		Provider:    models.ProviderApple,
		IDToken:     strings.TrimSpace(req.IDToken),
		EmailHint:   strings.TrimSpace(req.Email),
		DisplayName: strings.TrimSpace(req.DisplayName),
	}
	if err := s.validator.Validate(ctx, oauth); err != nil {
		return models.Session{}, invalidInput(err)
	}

	return s.signIn(ctx, "SignInWithApple", func() (models.AuthResponse, error) {
		return s.serverAdapter.OAuthApple(ctx, models.AppleOAuthRequest{
			IDToken:     oauth.IDToken,
			Email:       oauth.EmailHint,
			DisplayName: oauth.DisplayName,
		})
	})
}

func (s *sessionService) SignInWithGoogle(ctx context.Context, idToken string) (models.Session, error) {
	oauth := models.OAuthRequest{Provider: models.ProviderGoogle, IDToken: strings.TrimSpace(idToken)}
	if err := s.validator.Validate(ctx, oauth); err != nil {
		return models.Session{}, invalidInput(err)
	}

	return s.signIn(ctx, "SignInWithGoogle", func() (models.AuthResponse, error) {
		return s.serverAdapter.OAuthGoogle(ctx, models.GoogleOAuthRequest{IDToken: oauth.IDToken})
	})
}

// signIn runs exchange and, on success, persists the session before
// publishing it in memory. On any failure the previous state is kept.
func (s *sessionService) signIn(ctx context.Context, op string, exchange func() (models.AuthResponse, error)) (models.Session, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	fn := "*sessionService." + op

	auth, err := exchange()
	if err != nil {
		s.logger.Warn().Err(err).Str("func", fn).Msg("sign in rejected")
		return models.Session{}, mapAdapterError(err)
	}

	session := models.Session{User: auth.User.Public(), Token: auth.AccessToken}
	if err = s.repository.Save(ctx, session); err != nil {
		s.logger.Err(err).Str("func", fn).Msg("failed to persist session")
		s.restorePersisted(ctx)
		return models.Session{}, &clientError{kind: ErrLocalStorage, message: "Could not save the session on this device", cause: err}
	}

	s.setSnapshot(models.StateAuthenticated, session, "")
	s.logger.Info().Str("func", fn).Str("user_id", session.User.ID).Msg("signed in")

	return session, nil
}

// restorePersisted puts the keystore back in line with memory after a
// failed Save left it half written.
func (s *sessionService) restorePersisted(ctx context.Context) {
	current := s.Snapshot()

	var err error
	if current.State == models.StateAuthenticated {
		err = s.repository.Save(ctx, current.Session)
	} else {
		err = s.repository.Clear(ctx)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionService.restorePersisted").Msg("keystore left inconsistent")
	}
}

func (s *sessionService) ForgotPassword(ctx context.Context, email string) (string, error) {
	req := models.ForgotPasswordRequest{Email: strings.TrimSpace(email)}
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", invalidInput(err)
	}

	resp, err := s.serverAdapter.ForgotPassword(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*sessionService.ForgotPassword").Msg("forgot password failed")
		return "", mapAdapterError(err)
	}

	if strings.TrimSpace(resp.Message) == "" {
		return app.MsgForgotPasswordDefault, nil
	}
	return resp.Message, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	userID := s.Snapshot().Session.User.ID
	s.setSnapshot(models.StateAnonymous, models.Session{}, "")

	if err := s.repository.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "*sessionService.Logout").Msg("failed to clear keystore")
		return &clientError{kind: ErrLocalStorage, message: "Signed out, but the saved session could not be removed", cause: err}
	}

	s.logger.Info().Str("func", "*sessionService.Logout").Str("user_id", userID).Msg("signed out")
	return nil
}

func (s *sessionService) Snapshot() models.SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.SessionSnapshot{State: s.state, Session: s.session, Notice: s.notice}
}

func (s *sessionService) ClearNotice() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notice = ""
}

func (s *sessionService) setSnapshot(state models.SessionState, session models.Session, notice string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
	s.session = session
	s.notice = notice
}
