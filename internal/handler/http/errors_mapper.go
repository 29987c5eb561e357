// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/aimemo/internal/app"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/service"
	"github.com/MKhiriev/aimemo/internal/utils"
	"github.com/MKhiriev/aimemo/internal/validators"
)

// errorResponse is the status and public message of a known error.
type errorResponse struct {
	status  int
	message string
}

// errorStatusMap lists the errors whose message may be shown to the
// client. An empty message means the error's own text is shown.
var errorStatusMap = map[error]errorResponse{
	utils.ErrInvalidJSON: {http.StatusBadRequest, app.MsgInvalidJSON},

	validators.ErrEmailAndPasswordRequired: {http.StatusBadRequest, app.MsgEmailAndPasswordRequired},
	validators.ErrEmailRequired:            {http.StatusBadRequest, app.MsgEmailRequired},
	validators.ErrIDTokenRequired:          {http.StatusBadRequest, app.MsgIDTokenRequired},
	validators.ErrInvalidEmail:             {http.StatusBadRequest, ""},
	validators.ErrPasswordTooShort:         {http.StatusBadRequest, ""},
	validators.ErrPasswordTooLong:          {http.StatusBadRequest, ""},
	validators.ErrDisplayNameTooLong:       {http.StatusBadRequest, ""},
	validators.ErrUnsupportedProvider:      {http.StatusBadRequest, ""},

	service.ErrEmailAlreadyRegistered:      {http.StatusConflict, app.MsgEmailAlreadyRegistered},
	service.ErrInvalidCredentials:          {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrInvalidToken:                {http.StatusUnauthorized, app.MsgInvalidToken},
	service.ErrUserNotFound:                {http.StatusNotFound, app.MsgUserNotFound},
	service.ErrTooManyRequests:             {http.StatusTooManyRequests, app.MsgTooManyRequests},
	service.ErrInvalidIDToken:              {http.StatusUnauthorized, app.MsgInvalidIDToken},
	service.ErrProviderTokenMissingSubject: {http.StatusBadRequest, app.MsgProviderTokenMissingSubject},
	service.ErrGoogleTokenMissingEmail:     {http.StatusBadRequest, app.MsgGoogleTokenMissingEmail},
	service.ErrGoogleEmailNotVerified:      {http.StatusBadRequest, app.MsgGoogleEmailNotVerified},
	service.ErrProviderNotConfigured:       {http.StatusServiceUnavailable, app.MsgProviderNotConfigured},
	service.ErrJWKSUnavailable:             {http.StatusBadGateway, app.MsgInvalidIDToken},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			if resp.message == "" {
				resp.message = target.Error()
			}
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and writes the matching {"error": ...} body.
// Unknown errors become 500 without leaking their text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if resp.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", resp.status).Msg("request failed")

	utils.WriteError(w, resp.message, resp.status)
}
