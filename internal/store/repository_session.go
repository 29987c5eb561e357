// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/models"
)

type localSessionRepository struct {
	keystore Keystore
	logger   *logger.Logger
}

// NewLocalSessionRepository maps sessions onto [KeyToken] and [KeyUser] of
// keystore.
func NewLocalSessionRepository(keystore Keystore, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{keystore: keystore, logger: logger}
}

// Save implements [LocalSessionRepository]. The user is written first so a
// token never exists on disk without its user from a completed Save.
func (r *localSessionRepository) Save(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(session.User.Public())
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	if err = r.keystore.Set(ctx, KeyUser, string(payload)); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	if err = r.keystore.Set(ctx, KeyToken, session.Token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	r.logger.Debug().Str("func", "*localSessionRepository.Save").Str("user_id", session.User.ID).Msg("session saved")
	return nil
}

// Load implements [LocalSessionRepository].
func (r *localSessionRepository) Load(ctx context.Context) (models.Session, error) {
	token, err := r.keystore.Get(ctx, KeyToken)
	if errors.Is(err, ErrKeyNotFound) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load token: %w", err)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return models.Session{}, ErrLocalSessionNotFound
	}

	raw, err := r.keystore.Get(ctx, KeyUser)
	if errors.Is(err, ErrKeyNotFound) {
		return models.Session{Token: token}, nil
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load user: %w", err)
	}

	var user models.User
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptedSession, err)
	}
	if user.ID == "" {
		return models.Session{}, fmt.Errorf("%w: user without id", ErrCorruptedSession)
	}

	return models.Session{User: user, Token: token}, nil
}

// Clear implements [LocalSessionRepository]. Both keys are attempted even if
// the first delete fails.
func (r *localSessionRepository) Clear(ctx context.Context) error {
	errToken := r.keystore.Delete(ctx, KeyToken)
	errUser := r.keystore.Delete(ctx, KeyUser)

	if err := errors.Join(errToken, errUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
