// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// Queries are built with squirrel and retried through the DB's
// [ErrorClassificator] when the failure is transient.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user. user.ID must already be set.
//
// Error handling:
//   - unique_violation on the email constraint → [ErrEmailAlreadyRegistered].
//   - unique_violation on (provider, provider_subject) → [ErrProviderSubjectTaken].
//   - anything else → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := psql.
		Insert(usersTable).
		Columns("id", "email", "password_hash", "provider", "provider_subject", "display_name").
		Values(user.ID, nullString(user.Email), nullString(user.PasswordHash), string(user.Provider),
			nullString(user.ProviderSubject), nullString(user.DisplayName)).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.CreateUser", query, args)
}

// FindUserByID implements [UserRepository].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"id": id})
}

// FindUserByEmail implements [UserRepository]. Emails are compared case
// insensitively.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", sq.Expr("lower(email) = lower(?)", email))
}

// FindUserByProvider implements [UserRepository].
func (r *userRepository) FindUserByProvider(ctx context.Context, provider models.AuthProvider, subject string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByProvider", sq.Eq{
		"provider":         string(provider),
		"provider_subject": subject,
	})
}

// UpdateUser implements [UserRepository].
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := psql.
		Update(usersTable).
		SetMap(map[string]any{
			"email":            nullString(user.Email),
			"display_name":     nullString(user.DisplayName),
			"provider_subject": nullString(user.ProviderSubject),
			"updated_at":       sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.UpdateUser", query, args)
}

// Ping implements [UserRepository].
func (r *userRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *userRepository) findUser(ctx context.Context, fn string, where sq.Sqlizer) (models.User, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, fn, query, args)
}

// queryUser runs a single-row statement and maps driver errors to the
// package sentinels.
func (r *userRepository) queryUser(ctx context.Context, fn, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := withRetry(ctx, r.db.errorClassificator, func() error {
		return scanUser(r.db.QueryRowContext(ctx, query, args...), &user)
	})
	if err == nil {
		return user, nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}

	log.Err(err).Str("func", fn).Msg("error executing user query")

	if postgresError(err) == pgerrcode.UniqueViolation {
		if strings.Contains(postgresConstraint(err), "provider_subject") {
			return models.User{}, ErrProviderSubjectTaken
		}
		return models.User{}, ErrEmailAlreadyRegistered
	}

	return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func scanUser(row *sql.Row, user *models.User) error {
	var (
		email, passwordHash, subject, displayName sql.NullString
		provider                                  string
	)

	if err := row.Scan(&user.ID, &email, &passwordHash, &provider, &subject, &displayName,
		&user.CreatedAt, &user.UpdatedAt); err != nil {
		return err
	}

	user.Email = email.String
	user.PasswordHash = passwordHash.String
	user.Provider = models.AuthProvider(provider)
	user.ProviderSubject = subject.String
	user.DisplayName = displayName.String
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
