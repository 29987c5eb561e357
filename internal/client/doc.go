// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the saved session and then hands the terminal to the UI
// for the rest of the process lifetime.
package client
