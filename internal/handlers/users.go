package handlers

import (
	"net/http"

	"github.com/auxilium-app/auxilium/internal/auth"
	"github.com/auxilium-app/auxilium/internal/services"
)

// handleGetMe returns the authenticated user's account and profile
func (h *Handlers) handleGetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		h.respondError(w, Unauthorized("Unauthorized - please log in"))
		return
	}

	account, err := h.Users.GetWithProfile(r.Context(), claims.UserID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondOK(w, "user retrieved", account)
}

// handleCreateUser registers a new account (admin only)
func (h *Handlers) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var input services.CreateUserInput
	if err := decodeJSON(r, &input); err != nil {
		h.respondError(w, err)
		return
	}

	user, err := h.Users.Create(r.Context(), input)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondCreated(w, "user created", user)
}

// handleGetUser returns one account with its profile
func (h *Handlers) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := requireParam(r, "userID")
	if err != nil {
		h.respondError(w, err)
		return
	}

	account, err := h.Users.GetWithProfile(r.Context(), userID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondOK(w, "user retrieved", account)
}
