// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/aimemo/internal/app"
	"github.com/MKhiriev/aimemo/internal/utils"
)

// CheckHTTPMethod returns the handler registered via
// [chi.Mux.MethodNotAllowed]. It answers 405 with an "Allow" header listing
// the methods registered for the requested path.
//
// The lookup walks the router's routes (including sub-routers mounted with
// Route) and compares patterns against the raw request path. Parameterised
// segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if strings.TrimSuffix(route, "/") == strings.TrimSuffix(r.URL.Path, "/") && !slices.Contains(allowed, method) {
				allowed = append(allowed, method)
			}
			return nil
		})

		if len(allowed) > 0 {
			slices.Sort(allowed)
			w.Header().Set("Allow", strings.Join(append(allowed, http.MethodOptions), ", "))
		}
		utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}
