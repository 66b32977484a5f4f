package repository

import (
	"context"

	"github.com/auxilium-app/auxilium/internal/models"
)

// ProfileRepository defines person-profile data operations
type ProfileRepository interface {
	GetProfileByAdminNumber(ctx context.Context, adminNumber string) (*models.Profile, error)
	GetProfileByID(ctx context.Context, profileID string) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error
}

// UserRepository defines login-account data operations
type UserRepository interface {
	CreateUser(ctx context.Context, args CreateUserArgs) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	CountUsersWithRole(ctx context.Context, roleID int) (int, error)
}

// EventRepository defines event data operations
type EventRepository interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	SetEventStatus(ctx context.Context, eventID string, statusID int) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// ReportRepository defines event-report and participation data operations
type ReportRepository interface {
	CreateReport(ctx context.Context, report *models.EventReport) error
	GetReport(ctx context.Context, reportID string) (*models.EventReport, error)
	ListReportsByEvent(ctx context.Context, eventID string) ([]models.EventReport, error)
	CreateParticipation(ctx context.Context, rec *models.Participation) error
	ListParticipationByReport(ctx context.Context, reportID string) ([]models.Participation, error)
}

// FullRepository combines all repository interfaces.
// Use this when a service needs access to multiple domains.
type FullRepository interface {
	ProfileRepository
	UserRepository
	EventRepository
	ReportRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
