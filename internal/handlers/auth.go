package handlers

import (
	"net/http"

	"github.com/auxilium-app/auxilium/internal/auth"
)

// handleLogin verifies credentials, issues an access token and sets the
// refresh token cookie
func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	user, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(w, err)
		return
	}

	accessToken, err := h.Auth.GenerateAccessToken(user.UserID, user.RoleID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	refreshToken, err := h.Auth.GenerateRefreshToken(user.UserID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.Auth.SetRefreshCookie(w, refreshToken)
	respondOK(w, "login successful", LoginResponse{AccessToken: accessToken, User: user})
}

// handleRefresh exchanges a valid refresh cookie for a new access token.
// The role is re-read from storage so role changes take effect here.
func (h *Handlers) handleRefresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.RefreshCookieName)
	if err != nil {
		h.respondError(w, Unauthorized("missing refresh token"))
		return
	}

	claims, err := h.Auth.ParseRefreshToken(cookie.Value)
	if err != nil {
		h.respondError(w, Unauthorized("invalid or expired refresh token"))
		return
	}

	user, err := h.Users.Get(r.Context(), claims.UserID)
	if err != nil {
		h.respondError(w, Unauthorized("account no longer exists"))
		return
	}

	accessToken, err := h.Auth.GenerateAccessToken(user.UserID, user.RoleID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondOK(w, "token refreshed", RefreshResponse{AccessToken: accessToken})
}

// handleLogout clears the refresh token cookie
func (h *Handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.Auth.ClearRefreshCookie(w)
	respondOK(w, "logout successful", nil)
}
