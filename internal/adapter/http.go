// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/aimemo/internal/config"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/utils"
	"github.com/MKhiriev/aimemo/models"
)

// REST paths of the backend.
const (
	PathHealth         = "/health"
	PathRegister       = "/auth/register"
	PathLogin          = "/auth/login"
	PathForgotPassword = "/auth/forgot-password"
	PathMe             = "/auth/me"
	PathOAuthApple     = "/auth/oauth/apple"
	PathOAuthGoogle    = "/auth/oauth/google"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and bounds every
// request by adapterCfg.RequestTimeout.
//
// Returns [ErrInvalidBaseURL] if the address is empty or cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	res := call[models.HealthResponse](ctx, h, PathHealth, RequestOptions{})
	return required(res, PathHealth)
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	res := call[models.AuthResponse](ctx, h, PathRegister, RequestOptions{Method: http.MethodPost, Body: req})
	return authResult(res, PathRegister)
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	res := call[models.AuthResponse](ctx, h, PathLogin, RequestOptions{Method: http.MethodPost, Body: req})
	return authResult(res, PathLogin)
}

// ForgotPassword implements [ServerAdapter]. An empty 2xx body is not an
// error; the message is then empty.
func (h *httpServerAdapter) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordResponse, error) {
	res := call[models.ForgotPasswordResponse](ctx, h, PathForgotPassword, RequestOptions{Method: http.MethodPost, Body: req})
	if res.Err != nil {
		return models.ForgotPasswordResponse{}, res.Err
	}
	if res.Data == nil {
		return models.ForgotPasswordResponse{}, nil
	}
	return *res.Data, nil
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context, token string) (models.User, error) {
	res := call[models.MeResponse](ctx, h, PathMe, RequestOptions{Token: token})
	me, err := required(res, PathMe)
	if err != nil {
		return models.User{}, err
	}
	if me.User.ID == "" {
		return models.User{}, fmt.Errorf("%w: %s: user without id", ErrMalformedResponse, PathMe)
	}
	return me.User, nil
}

// OAuthApple implements [ServerAdapter].
func (h *httpServerAdapter) OAuthApple(ctx context.Context, req models.AppleOAuthRequest) (models.AuthResponse, error) {
	res := call[models.AuthResponse](ctx, h, PathOAuthApple, RequestOptions{Method: http.MethodPost, Body: req})
	return authResult(res, PathOAuthApple)
}

// OAuthGoogle implements [ServerAdapter].
func (h *httpServerAdapter) OAuthGoogle(ctx context.Context, req models.GoogleOAuthRequest) (models.AuthResponse, error) {
	res := call[models.AuthResponse](ctx, h, PathOAuthGoogle, RequestOptions{Method: http.MethodPost, Body: req})
	return authResult(res, PathOAuthGoogle)
}

// call wraps [Request] with debug logging. Tokens and bodies are never
// logged.
func call[T any](ctx context.Context, h *httpServerAdapter, path string, opts RequestOptions) Result[T] {
	start := time.Now()
	res := Request[T](ctx, h.client, path, opts)

	event := h.logger.Debug()
	if res.Err != nil {
		event = h.logger.Warn().Err(res.Err)
	}
	event.
		Str("func", "httpServerAdapter.call").
		Str("method", methodOrGet(opts.Method)).
		Str("path", path).
		Int("status", res.Status).
		Dur("duration", time.Since(start)).
		Msg("backend request")

	return res
}

func methodOrGet(method string) string {
	if method == "" {
		return http.MethodGet
	}
	return method
}

func required[T any](res Result[T], path string) (T, error) {
	var zero T
	if res.Err != nil {
		return zero, res.Err
	}
	if res.Data == nil {
		return zero, fmt.Errorf("%w: %s: empty body", ErrMalformedResponse, path)
	}
	return *res.Data, nil
}

// authResult additionally requires both halves of a session, so a caller
// can never persist a token without a user or the other way round.
func authResult(res Result[models.AuthResponse], path string) (models.AuthResponse, error) {
	auth, err := required(res, path)
	if err != nil {
		return models.AuthResponse{}, err
	}
	if auth.AccessToken == "" || auth.User.ID == "" {
		return models.AuthResponse{}, fmt.Errorf("%w: %s: missing access_token or user", ErrMalformedResponse, path)
	}
	return auth, nil
}
