// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/logger"
)

// ErrLimiterUnavailable wraps Redis failures of the reset limiter.
var ErrLimiterUnavailable = errors.New("reset limiter unavailable")

const resetKeyPrefix = "aimemo:reset:"

type redisResetLimiter struct {
	redis       *redis.Client
	maxAttempts int64
	window      time.Duration
	logger      *logger.Logger
}

// NewRedisResetLimiter returns a fixed-window [ResetLimiter] over client.
func NewRedisResetLimiter(client *redis.Client, cfg config.Limiter, logger *logger.Logger) ResetLimiter {
	return &redisResetLimiter{
		redis:       client,
		maxAttempts: int64(cfg.MaxAttempts),
		window:      cfg.Window,
		logger:      logger,
	}
}

// NewConnectRedis creates a go-redis client for cfg and pings it.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

// Allow implements [ResetLimiter]. The first hit of a window sets its TTL;
// every hit beyond maxAttempts is refused until the key expires.
func (l *redisResetLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	key = resetKeyPrefix + key

	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}

	if count == 1 {
		if err = l.redis.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
		}
	}

	if count <= l.maxAttempts {
		return true, 0, nil
	}

	ttl, err := l.redis.TTL(ctx, key).Result()
	if err != nil || ttl <= 0 {
		ttl = l.window
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*redisResetLimiter.Allow").
		Int64("count", count).
		Dur("retry_after", ttl).
		Msg("reset attempt refused")

	return false, ttl, nil
}

// Ping implements [ResetLimiter].
func (l *redisResetLimiter) Ping(ctx context.Context) error {
	if err := l.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}
	return nil
}

// Enabled implements [ResetLimiter].
func (l *redisResetLimiter) Enabled() bool { return true }

type noopResetLimiter struct{}

// NewNoopResetLimiter returns a [ResetLimiter] that allows everything. It is
// used when no Redis address is configured.
func NewNoopResetLimiter() ResetLimiter { return noopResetLimiter{} }

func (noopResetLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	return true, 0, nil
}

func (noopResetLimiter) Ping(context.Context) error { return nil }

func (noopResetLimiter) Enabled() bool { return false }
