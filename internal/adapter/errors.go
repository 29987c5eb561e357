// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"net/http"
)

// Status sentinels. An [*APIError] unwraps to the one matching its status,
// so callers can write errors.Is(err, adapter.ErrUnauthorized).
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrTransport wraps every failure to reach the backend at all:
	// DNS, refused connections, timeouts, cancelled contexts.
	ErrTransport = errors.New("backend unreachable")

	// ErrMalformedResponse is returned when a 2xx body is not the
	// expected JSON.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidBaseURL is returned by NewHTTPServerAdapter.
	ErrInvalidBaseURL = errors.New("invalid adapter http address")
)

// APIError is a non-2xx response. Message is what the server said, verbatim
// when it sent {"error": "..."}.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return statusSentinel(e.Status)
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return ErrUnexpectedStatus
	}
}
