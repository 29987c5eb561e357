// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoSessionService = errors.New("client: session service is required")
	ErrNoUI             = errors.New("client: ui is required")
)
