// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/aimemo/models"
)

// renderHealthBadge draws the server indicator for report.
func renderHealthBadge(report models.HealthReport) string {
	label := report.State.String()

	switch report.State {
	case models.HealthHealthy:
		return badgeHealthyStyle.Render(label)
	case models.HealthWarning:
		return badgeWarningStyle.Render(label)
	case models.HealthError:
		return badgeErrorStyle.Render(label)
	default:
		return badgeUnknownStyle.Render("checking")
	}
}

// healthDetail explains the badge in one line.
func healthDetail(report models.HealthReport) string {
	switch {
	case report.Err != nil:
		return humanizeError(report.Err)
	case report.State == models.HealthUnknown:
		return "-"
	case report.App != "":
		return report.App + " reports " + report.Status
	default:
		return "server reports " + report.Status
	}
}
