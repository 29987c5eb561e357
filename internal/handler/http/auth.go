// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/aimemo/internal/app"
	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/utils"
	"github.com/MKhiriev/aimemo/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", resp.User.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	message, err := h.services.AuthService.ForgotPassword(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ForgotPasswordResponse{Message: message}, http.StatusAccepted)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgInvalidToken, http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.Me(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MeResponse{User: user}, http.StatusOK)
}

// oauthBody accepts the email and display name hints for either provider.
type oauthBody struct {
	IDToken     string `json:"id_token"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

func (h *Handler) oauthApple(w http.ResponseWriter, r *http.Request) {
	h.oauth(w, r, models.ProviderApple)
}

func (h *Handler) oauthGoogle(w http.ResponseWriter, r *http.Request) {
	h.oauth(w, r, models.ProviderGoogle)
}

func (h *Handler) oauth(w http.ResponseWriter, r *http.Request, provider models.AuthProvider) {
	var body oauthBody
	if err := utils.ReadJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.OAuth(r.Context(), models.OAuthRequest{
		Provider:    provider,
		IDToken:     body.IDToken,
		EmailHint:   body.Email,
		DisplayName: body.DisplayName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
