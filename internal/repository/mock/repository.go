package mock

import (
	"context"

	"github.com/auxilium-app/auxilium/internal/models"
	"github.com/auxilium-app/auxilium/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
// This provides a flexible way to test error paths without complex database
// manipulation. It also counts calls to the profile and participation methods
// so tests can assert how often the engine touched storage.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.CreateReportError = errors.New("database error")
//	svc := services.NewPointsService(log, mockRepo, sheetsClient, services.DefaultColumns())
//	_, err := svc.GeneratePointsSheet(ctx, eventID, userID, docs)
//	// err will now contain the injected error
type Repository struct {
	repository.FullRepository

	// ===== Profile Errors =====
	GetProfileByAdminNumberError error
	GetProfileByIDError          error
	CreateProfileError           error

	// ===== User Errors =====
	CreateUserError         error
	GetUserByEmailError     error
	GetUserByIDError        error
	CountUsersWithRoleError error

	// ===== Event Errors =====
	CreateEventError    error
	GetEventError       error
	ListEventsError     error
	UpdateEventError    error
	SetEventStatusError error
	DeleteEventError    error

	// ===== Report Errors =====
	CreateReportError              error
	GetReportError                 error
	ListReportsByEventError        error
	CreateParticipationError       error
	ListParticipationByReportError error

	// ===== Call counters =====
	GetProfileByAdminNumberCalls int
	CreateProfileCalls           int
	CreateParticipationCalls     int
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{
		FullRepository: real,
	}
}

// ===== Profile Methods =====

func (m *Repository) GetProfileByAdminNumber(ctx context.Context, adminNumber string) (*models.Profile, error) {
	m.GetProfileByAdminNumberCalls++
	if m.GetProfileByAdminNumberError != nil {
		return nil, m.GetProfileByAdminNumberError
	}
	return m.FullRepository.GetProfileByAdminNumber(ctx, adminNumber)
}

func (m *Repository) GetProfileByID(ctx context.Context, profileID string) (*models.Profile, error) {
	if m.GetProfileByIDError != nil {
		return nil, m.GetProfileByIDError
	}
	return m.FullRepository.GetProfileByID(ctx, profileID)
}

func (m *Repository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	m.CreateProfileCalls++
	if m.CreateProfileError != nil {
		return m.CreateProfileError
	}
	return m.FullRepository.CreateProfile(ctx, profile)
}

// ===== User Methods =====

func (m *Repository) CreateUser(ctx context.Context, args repository.CreateUserArgs) (*models.User, error) {
	if m.CreateUserError != nil {
		return nil, m.CreateUserError
	}
	return m.FullRepository.CreateUser(ctx, args)
}

func (m *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetUserByEmailError != nil {
		return nil, m.GetUserByEmailError
	}
	return m.FullRepository.GetUserByEmail(ctx, email)
}

func (m *Repository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	if m.GetUserByIDError != nil {
		return nil, m.GetUserByIDError
	}
	return m.FullRepository.GetUserByID(ctx, userID)
}

func (m *Repository) CountUsersWithRole(ctx context.Context, roleID int) (int, error) {
	if m.CountUsersWithRoleError != nil {
		return 0, m.CountUsersWithRoleError
	}
	return m.FullRepository.CountUsersWithRole(ctx, roleID)
}

// ===== Event Methods =====

func (m *Repository) CreateEvent(ctx context.Context, event *models.Event) error {
	if m.CreateEventError != nil {
		return m.CreateEventError
	}
	return m.FullRepository.CreateEvent(ctx, event)
}

func (m *Repository) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	if m.GetEventError != nil {
		return nil, m.GetEventError
	}
	return m.FullRepository.GetEvent(ctx, eventID)
}

func (m *Repository) ListEvents(ctx context.Context) ([]models.Event, error) {
	if m.ListEventsError != nil {
		return nil, m.ListEventsError
	}
	return m.FullRepository.ListEvents(ctx)
}

func (m *Repository) UpdateEvent(ctx context.Context, event *models.Event) error {
	if m.UpdateEventError != nil {
		return m.UpdateEventError
	}
	return m.FullRepository.UpdateEvent(ctx, event)
}

func (m *Repository) SetEventStatus(ctx context.Context, eventID string, statusID int) error {
	if m.SetEventStatusError != nil {
		return m.SetEventStatusError
	}
	return m.FullRepository.SetEventStatus(ctx, eventID, statusID)
}

func (m *Repository) DeleteEvent(ctx context.Context, eventID string) error {
	if m.DeleteEventError != nil {
		return m.DeleteEventError
	}
	return m.FullRepository.DeleteEvent(ctx, eventID)
}

// ===== Report Methods =====

func (m *Repository) CreateReport(ctx context.Context, report *models.EventReport) error {
	if m.CreateReportError != nil {
		return m.CreateReportError
	}
	return m.FullRepository.CreateReport(ctx, report)
}

func (m *Repository) GetReport(ctx context.Context, reportID string) (*models.EventReport, error) {
	if m.GetReportError != nil {
		return nil, m.GetReportError
	}
	return m.FullRepository.GetReport(ctx, reportID)
}

func (m *Repository) ListReportsByEvent(ctx context.Context, eventID string) ([]models.EventReport, error) {
	if m.ListReportsByEventError != nil {
		return nil, m.ListReportsByEventError
	}
	return m.FullRepository.ListReportsByEvent(ctx, eventID)
}

func (m *Repository) CreateParticipation(ctx context.Context, rec *models.Participation) error {
	m.CreateParticipationCalls++
	if m.CreateParticipationError != nil {
		return m.CreateParticipationError
	}
	return m.FullRepository.CreateParticipation(ctx, rec)
}

func (m *Repository) ListParticipationByReport(ctx context.Context, reportID string) ([]models.Participation, error) {
	if m.ListParticipationByReportError != nil {
		return nil, m.ListParticipationByReportError
	}
	return m.FullRepository.ListParticipationByReport(ctx, reportID)
}
