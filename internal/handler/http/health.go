// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/aimemo/internal/utils"
	"github.com/MKhiriev/aimemo/models"
)

// health answers 200 while the database is reachable, even when only
// degraded, and 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := h.services.HealthService.Check(r.Context())

	status := http.StatusOK
	if resp.Status == models.HealthStatusError {
		status = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, resp, status)
}
