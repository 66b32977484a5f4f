package models

import "time"

// Role IDs assigned to user accounts
const (
	RoleUser       = 1
	RoleAdmin      = 2
	RoleSuperadmin = 3
)

// Record status IDs
const (
	StatusActive  = 1
	StatusDeleted = 2
)

// Roles a person can hold at an event. Points sheet generation only
// writes PARTICIPANT; ORGANIZER and HELPER complete the closed set the
// event_role column accepts.
const (
	EventRoleOrganizer   = "ORGANIZER"
	EventRoleHelper      = "HELPER"
	EventRoleParticipant = "PARTICIPANT"
)

// Profile identifies a person by their permanent admin number.
// Profiles are created lazily during points sheet generation when an
// admin number is seen for the first time, or explicitly alongside a
// user account.
type Profile struct {
	ProfileID   string `json:"profile_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Course      string `json:"course,omitempty"`
	IChat       string `json:"ichat,omitempty"`
	AdminNumber string `json:"admin_number"`
}

// User is a login account linked to a profile
type User struct {
	UserID    string `json:"user_id"`
	ProfileID string `json:"profile_id"`
	Email     string `json:"email"`
	Password  string `json:"-"` // bcrypt hash, never serialized
	StatusID  int    `json:"status_id"`
	RoleID    int    `json:"role_id"`
}

// Event represents a volunteering or community-service event
type Event struct {
	EventID     string     `json:"event_id"`
	Name        string     `json:"name"`
	EventTypeID int        `json:"event_type_id"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Platform    string     `json:"platform,omitempty"`
	SignupURL   string     `json:"signup_url,omitempty"`
	FeedbackURL string     `json:"feedback_url,omitempty"`
	HelpersURL  string     `json:"helpers_url,omitempty"`
	CreatedBy   string     `json:"created_by,omitempty"`
	StatusID    int        `json:"status_id"`
}

// EventReport is one reconciliation run's persisted summary, parent of
// all participation records the run produced. Immutable after creation.
type EventReport struct {
	ReportID      string    `json:"report_id"`
	EventID       string    `json:"event_id"`
	SignupCount   int       `json:"signup_count"`
	FeedbackCount int       `json:"feedback_count"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Participation records one person's outcome against an event report
type Participation struct {
	ParticipationID string `json:"participation_id"`
	ProfileID       string `json:"profile_id"`
	ReportID        string `json:"report_id"`
	Attended        bool   `json:"attended"`
	EventRole       string `json:"event_role"`
	PointsAwarded   int    `json:"points_awarded"`
}
