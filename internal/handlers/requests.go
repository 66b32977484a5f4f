package handlers

import (
	"time"

	"github.com/auxilium-app/auxilium/internal/models"
)

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries a freshly issued access token
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        *models.User `json:"user"`
}

// RefreshResponse carries a re-issued access token
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// EventRequest is the create/update event payload
type EventRequest struct {
	Name        string     `json:"name"`
	EventTypeID int        `json:"event_type_id"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Platform    string     `json:"platform"`
	SignupURL   string     `json:"signup_url"`
	FeedbackURL string     `json:"feedback_url"`
	HelpersURL  string     `json:"helpers_url"`
}

func (req *EventRequest) toEvent() *models.Event {
	return &models.Event{
		Name:        req.Name,
		EventTypeID: req.EventTypeID,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Platform:    req.Platform,
		SignupURL:   req.SignupURL,
		FeedbackURL: req.FeedbackURL,
		HelpersURL:  req.HelpersURL,
	}
}

// GeneratePointsRequest names the source documents for a reconciliation
// run. URLs left empty fall back to the ones stored on the event.
type GeneratePointsRequest struct {
	SignupURL   string `json:"signup_url"`
	FeedbackURL string `json:"feedback_url"`
	HelperURL   string `json:"helper_url"`
}
