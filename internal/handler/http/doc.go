// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the aimemo backend.
//
// It wires the chi router, the account and health handlers, and the
// middleware chain: trace id, access logging, CORS, gzip and bearer
// authentication. Every error body is {"error": "<message>"}.
package http
