// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository UserRepository
	ResetLimiter   ResetLimiter

	db    *DB
	redis *redis.Client
}

// NewStorages connects PostgreSQL, applies migrations and, when
// cfg.Redis.Address is set, connects the reset limiter store. Without Redis
// the limiter allows every request.
func NewStorages(ctx context.Context, cfg *config.ServerConfig, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &Storages{
		UserRepository: NewUserRepository(db, logger),
		ResetLimiter:   NewNoopResetLimiter(),
		db:             db,
	}

	if cfg.Redis.Address != "" {
		client, err := NewConnectRedis(ctx, cfg.Redis, logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		storages.redis = client
		storages.ResetLimiter = NewRedisResetLimiter(client, cfg.Limiter, logger)
	} else {
		logger.Warn().Msg("redis address is empty, forgot-password limiter disabled")
	}

	return storages, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
