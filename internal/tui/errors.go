// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/aimemo/internal/app"
	"github.com/MKhiriev/aimemo/internal/service"
)

// ErrNoServices is returned by [New] when a client service is missing.
var ErrNoServices = errors.New("tui: client services are required")

var errNoToken = errors.New("no token to copy")

// humanizeError turns a service error into the line shown under a form.
// Client service errors already carry a user-facing message.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrServerUnreachable) {
		return app.MsgServerUnreachable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnreachable
	}

	return err.Error()
}
