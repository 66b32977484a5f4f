package handlers

import (
	"net/http"

	"github.com/auxilium-app/auxilium/internal/auth"
)

// handleCreateEvent creates a new event
func (h *Handlers) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	event := req.toEvent()
	if claims, ok := auth.ClaimsFrom(r.Context()); ok {
		event.CreatedBy = claims.UserID
	}

	created, err := h.Events.Create(r.Context(), event)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondCreated(w, "event created", created)
}

// handleListEvents returns all events
func (h *Handlers) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Events.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, "events retrieved", events)
}

// handleGetEvent returns one event
func (h *Handlers) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := requireParam(r, "eventID")
	if err != nil {
		h.respondError(w, err)
		return
	}

	event, err := h.Events.Get(r.Context(), eventID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondOK(w, "event retrieved", event)
}

// handleUpdateEvent replaces an event's mutable fields
func (h *Handlers) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := requireParam(r, "eventID")
	if err != nil {
		h.respondError(w, err)
		return
	}

	var req EventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	event := req.toEvent()
	event.EventID = eventID

	updated, err := h.Events.Update(r.Context(), event)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondOK(w, "event updated", updated)
}

// handleDeleteEvent soft-deletes an event
func (h *Handlers) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := requireParam(r, "eventID")
	if err != nil {
		h.respondError(w, err)
		return
	}

	if err := h.Events.Delete(r.Context(), eventID); err != nil {
		h.respondError(w, err)
		return
	}

	respondOK(w, "event deleted", nil)
}

// handleRestoreEvent reactivates a soft-deleted event
func (h *Handlers) handleRestoreEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := requireParam(r, "eventID")
	if err != nil {
		h.respondError(w, err)
		return
	}

	if err := h.Events.Restore(r.Context(), eventID); err != nil {
		h.respondError(w, err)
		return
	}

	respondOK(w, "event restored", nil)
}

// handleHardDeleteEvent permanently removes an event and its reports
func (h *Handlers) handleHardDeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := requireParam(r, "eventID")
	if err != nil {
		h.respondError(w, err)
		return
	}

	if err := h.Events.HardDelete(r.Context(), eventID); err != nil {
		h.respondError(w, err)
		return
	}

	respondOK(w, "event permanently deleted", nil)
}

// handleListReports lists all reports generated for an event
func (h *Handlers) handleListReports(w http.ResponseWriter, r *http.Request) {
	eventID, err := requireParam(r, "eventID")
	if err != nil {
		h.respondError(w, err)
		return
	}

	reports, err := h.Events.Reports(r.Context(), eventID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondOK(w, "reports retrieved", reports)
}

// handleGetReport returns one report with its participation records
func (h *Handlers) handleGetReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := requireParam(r, "reportID")
	if err != nil {
		h.respondError(w, err)
		return
	}

	detail, err := h.Events.Report(r.Context(), reportID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondOK(w, "report retrieved", detail)
}
