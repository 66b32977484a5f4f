package handlers

import (
	"net/http"
	"time"

	"github.com/auxilium-app/auxilium/internal/auth"
	"github.com/auxilium-app/auxilium/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		// Auth (public)
		r.Post("/auth/login", h.handleLogin)
		r.Post("/auth/refresh", h.handleRefresh)
		r.Post("/auth/logout", h.handleLogout)

		// Any authenticated user
		r.Group(func(r chi.Router) {
			r.Use(h.Auth.RequireAuth)
			r.Get("/users/me", h.handleGetMe)
		})

		// Admin and superadmin only
		r.Group(func(r chi.Router) {
			r.Use(h.Auth.RequireAuth)
			r.Use(auth.RequireRole(models.RoleAdmin, models.RoleSuperadmin))

			// Users
			r.Post("/users", h.handleCreateUser)
			r.Get("/users/{userID}", h.handleGetUser)

			// Events
			r.Get("/events", h.handleListEvents)
			r.Post("/events", h.handleCreateEvent)
			r.Get("/events/{eventID}", h.handleGetEvent)
			r.Put("/events/{eventID}", h.handleUpdateEvent)
			r.Delete("/events/{eventID}", h.handleDeleteEvent)
			r.Post("/events/{eventID}/restore", h.handleRestoreEvent)
			r.Delete("/events/{eventID}/hard", h.handleHardDeleteEvent)

			// Points sheet reconciliation
			r.Get("/events/{eventID}/reports", h.handleListReports)
			r.Post("/events/{eventID}/reports", h.handleGeneratePoints)
			r.Get("/reports/{reportID}", h.handleGetReport)
		})
	})

	return r
}

// handleHealth reports service liveness
func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, "ok", nil)
}
