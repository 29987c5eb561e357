// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Raw values of the status field reported by GET /health.
const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
	HealthStatusError    = "error"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	App    string `json:"app,omitempty"`
}

// HealthState is the visual state of the backend status indicator.
type HealthState int

const (
	HealthUnknown HealthState = iota
	HealthHealthy
	HealthWarning
	HealthError
)

func (s HealthState) String() string {
	switch s {
	case HealthHealthy:
		return "healthy"
	case HealthWarning:
		return "warning"
	case HealthError:
		return "error"
	default:
		return "unknown"
	}
}

// HealthStateOf maps a raw status value onto the indicator state.
// Anything that is not "ok" or "degraded" is an error.
func HealthStateOf(status string) HealthState {
	switch status {
	case HealthStatusOK:
		return HealthHealthy
	case HealthStatusDegraded:
		return HealthWarning
	default:
		return HealthError
	}
}

// HealthReport is the outcome of one health check.
type HealthReport struct {
	State     HealthState
	Status    string
	App       string
	CheckedAt time.Time

	// Err is set when the check itself failed.
	Err error
}
