package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/auxilium-app/auxilium/internal/auth"
	"github.com/auxilium-app/auxilium/internal/services"
)

// handleGeneratePoints runs the points sheet reconciliation for an event
func (h *Handlers) handleGeneratePoints(w http.ResponseWriter, r *http.Request) {
	eventID, err := requireParam(r, "eventID")
	if err != nil {
		h.respondError(w, err)
		return
	}

	// Body is optional; an empty body means "use the URLs on the event"
	var req GeneratePointsRequest
	if err := decodeJSON(r, &req); err != nil && err != errEmptyBody {
		h.respondError(w, err)
		return
	}

	event, err := h.Events.Get(r.Context(), eventID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	if req.SignupURL == "" {
		req.SignupURL = event.SignupURL
	}
	if req.FeedbackURL == "" {
		req.FeedbackURL = event.FeedbackURL
	}
	if req.HelperURL == "" {
		req.HelperURL = event.HelpersURL
	}

	docs, err := sourceDocsFromRequest(req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	var userID string
	if claims, ok := auth.ClaimsFrom(r.Context()); ok {
		userID = claims.UserID
	}

	sheet, err := h.Points.GeneratePointsSheet(r.Context(), eventID, userID, docs)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondCreated(w, "points sheet generated", sheet)
}

func sourceDocsFromRequest(req GeneratePointsRequest) (services.SourceDocs, error) {
	var docs services.SourceDocs
	var err error

	if docs.Signup, err = spreadsheetIDFromURL(req.SignupURL); err != nil {
		return docs, BadRequest("invalid signup sheet URL: " + err.Error())
	}
	if docs.Feedback, err = spreadsheetIDFromURL(req.FeedbackURL); err != nil {
		return docs, BadRequest("invalid feedback form URL: " + err.Error())
	}
	if docs.Helper, err = spreadsheetIDFromURL(req.HelperURL); err != nil {
		return docs, BadRequest("invalid helper sheet URL: " + err.Error())
	}
	return docs, nil
}

// spreadsheetIDFromURL extracts the document ID from a share link of the
// form https://docs.google.com/spreadsheets/d/{id}/edit. Bare IDs pass
// through unchanged.
func spreadsheetIDFromURL(raw string) (string, error) {
	if raw == "" {
		return "", errMissingSheetURL
	}
	if !strings.Contains(raw, "/") {
		return raw, nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i, seg := range segments {
		if seg == "d" && i+1 < len(segments) && segments[i+1] != "" {
			return segments[i+1], nil
		}
	}
	return "", errNoSpreadsheetID
}

var (
	errMissingSheetURL = BadRequest("sheet URL is required")
	errNoSpreadsheetID = BadRequest("URL does not contain a spreadsheet ID")
)
