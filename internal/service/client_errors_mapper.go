// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/aimemo/internal/adapter"
	"github.com/MKhiriev/aimemo/internal/app"
)

// clientError carries the message shown to the user while matching both a
// service sentinel and the original adapter error with [errors.Is].
type clientError struct {
	kind    error
	message string
	cause   error
}

func (e *clientError) Error() string { return e.message }

func (e *clientError) Unwrap() []error { return []error{e.kind, e.cause} }

// mapAdapterError translates an adapter error into a client service error.
// Server messages are kept verbatim.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	switch {
	case errors.As(err, &apiErr):
		return &clientError{kind: statusKind(apiErr.Status), message: apiErr.Message, cause: err}

	case errors.Is(err, adapter.ErrTransport):
		return &clientError{kind: ErrServerUnreachable, message: app.MsgServerUnreachable, cause: err}

	case errors.Is(err, adapter.ErrMalformedResponse):
		return &clientError{kind: ErrUnexpectedResponse, message: "Unexpected response from the server", cause: err}
	}

	return err
}

func statusKind(status int) error {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrInvalidInput
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthenticated
	case http.StatusNotFound:
		return ErrAccountNotFound
	case http.StatusConflict:
		return ErrAccountExists
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return ErrServerFailure
	}
}

// invalidInput wraps a local validation failure so callers can branch on
// [ErrInvalidInput] while the message stays the validator's.
func invalidInput(err error) error {
	return &clientError{kind: ErrInvalidInput, message: err.Error(), cause: err}
}
