// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the backend.
//
// It defines the Worker interface and a Workers aggregate that starts every
// worker and waits until all of them have stopped.
package workers

import (
	"context"

	"github.com/MKhiriev/aimemo/models"
)

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// HealthSink receives every health probe result.
type HealthSink interface {
	SetHealth(resp models.HealthResponse)
}
