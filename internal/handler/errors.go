// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPHandler is returned by NewHandlers when the server configuration
// has no HTTP address. This is a fatal misconfiguration.
var errNoHTTPHandler = errors.New("no http handler is created: empty http address")
