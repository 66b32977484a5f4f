package repository_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/auxilium-app/auxilium/internal/models"
	"github.com/auxilium-app/auxilium/internal/repository"
	"github.com/auxilium-app/auxilium/internal/testutil"
)

// ==================== Profile Tests ====================

func TestCreateAndGetProfile(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	profile := &models.Profile{
		FirstName:   "Jane",
		LastName:    "Doe",
		Course:      "DIT",
		IChat:       "@janedoe",
		AdminNumber: "A001",
	}
	if err := repo.CreateProfile(ctx, profile); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	if profile.ProfileID == "" {
		t.Fatal("expected profile ID to be assigned")
	}

	byAdmin, err := repo.GetProfileByAdminNumber(ctx, "A001")
	if err != nil {
		t.Fatalf("failed to get profile by admin number: %v", err)
	}
	if byAdmin.FirstName != "Jane" || byAdmin.LastName != "Doe" {
		t.Errorf("unexpected profile: %+v", byAdmin)
	}

	byID, err := repo.GetProfileByID(ctx, profile.ProfileID)
	if err != nil {
		t.Fatalf("failed to get profile by ID: %v", err)
	}
	if byID.AdminNumber != "A001" {
		t.Errorf("expected admin number A001, got %s", byID.AdminNumber)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	if _, err := repo.GetProfileByAdminNumber(ctx, "A999"); !stderrors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetProfileByID(ctx, "no-such-id"); !stderrors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateProfileDuplicateAdminNumber(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	first := &models.Profile{FirstName: "Jane", LastName: "Doe", AdminNumber: "A001"}
	if err := repo.CreateProfile(ctx, first); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	dup := &models.Profile{FirstName: "Other", LastName: "Person", AdminNumber: "A001"}
	if err := repo.CreateProfile(ctx, dup); !stderrors.Is(err, repository.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

// ==================== User Tests ====================

func TestCreateUser(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, repository.CreateUserArgs{
		Email:        "jane@example.com",
		PasswordHash: "hashed",
		FirstName:    "Jane",
		LastName:     "Doe",
		AdminNumber:  "A001",
		RoleID:       models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if user.UserID == "" || user.ProfileID == "" {
		t.Fatal("expected user and profile IDs to be assigned")
	}
	if user.RoleID != models.RoleAdmin {
		t.Errorf("expected role %d, got %d", models.RoleAdmin, user.RoleID)
	}
	if user.StatusID != models.StatusActive {
		t.Errorf("expected active status, got %d", user.StatusID)
	}

	// Profile is created alongside the user
	profile, err := repo.GetProfileByAdminNumber(ctx, "A001")
	if err != nil {
		t.Fatalf("expected linked profile: %v", err)
	}
	if profile.ProfileID != user.ProfileID {
		t.Errorf("profile %s not linked to user profile %s", profile.ProfileID, user.ProfileID)
	}
}

func TestCreateUserDefaultRole(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, repository.CreateUserArgs{
		Email:        "user@example.com",
		PasswordHash: "hashed",
		FirstName:    "Plain",
		AdminNumber:  "A002",
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if user.RoleID != models.RoleUser {
		t.Errorf("expected default role %d, got %d", models.RoleUser, user.RoleID)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	args := repository.CreateUserArgs{
		Email:        "jane@example.com",
		PasswordHash: "hashed",
		FirstName:    "Jane",
		AdminNumber:  "A001",
	}
	if _, err := repo.CreateUser(ctx, args); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	args.AdminNumber = "A002"
	if _, err := repo.CreateUser(ctx, args); !stderrors.Is(err, repository.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate for repeated email, got %v", err)
	}

	// Rollback: the second profile must not survive the failed transaction
	if _, err := repo.GetProfileByAdminNumber(ctx, "A002"); !stderrors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected rolled-back profile to be absent, got %v", err)
	}
}

func TestGetUserByEmailAndID(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, repository.CreateUserArgs{
		Email:        "jane@example.com",
		PasswordHash: "hashed",
		FirstName:    "Jane",
		AdminNumber:  "A001",
		RoleID:       models.RoleSuperadmin,
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	byEmail, err := repo.GetUserByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("failed to get user by email: %v", err)
	}
	if byEmail.UserID != created.UserID || byEmail.RoleID != models.RoleSuperadmin {
		t.Errorf("unexpected user: %+v", byEmail)
	}

	byID, err := repo.GetUserByID(ctx, created.UserID)
	if err != nil {
		t.Fatalf("failed to get user by ID: %v", err)
	}
	if byID.Email != "jane@example.com" {
		t.Errorf("expected email jane@example.com, got %s", byID.Email)
	}

	if _, err := repo.GetUserByEmail(ctx, "nobody@example.com"); !stderrors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCountUsersWithRole(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	count, err := repo.CountUsersWithRole(ctx, models.RoleSuperadmin)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 superadmins, got %d", count)
	}

	if _, err := repo.CreateUser(ctx, repository.CreateUserArgs{
		Email: "root@example.com", PasswordHash: "h", FirstName: "Root",
		AdminNumber: "A000", RoleID: models.RoleSuperadmin,
	}); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	count, err = repo.CountUsersWithRole(ctx, models.RoleSuperadmin)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 superadmin, got %d", count)
	}
}

// ==================== Event Tests ====================

func newTestEvent() *models.Event {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	return &models.Event{
		Name:        "Beach Cleanup",
		EventTypeID: 1,
		Description: "Quarterly cleanup",
		StartDate:   &start,
		EndDate:     &end,
		Platform:    "Zoom",
		SignupURL:   "https://docs.google.com/spreadsheets/d/signup/edit",
	}
}

func TestCreateAndGetEvent(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	event := newTestEvent()
	if err := repo.CreateEvent(ctx, event); err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.EventID == "" {
		t.Fatal("expected event ID to be assigned")
	}
	if event.StatusID != models.StatusActive {
		t.Errorf("expected active status, got %d", event.StatusID)
	}

	got, err := repo.GetEvent(ctx, event.EventID)
	if err != nil {
		t.Fatalf("failed to get event: %v", err)
	}
	if got.Name != "Beach Cleanup" || got.Platform != "Zoom" {
		t.Errorf("unexpected event: %+v", got)
	}
	if got.StartDate == nil || !got.StartDate.Equal(*event.StartDate) {
		t.Errorf("expected start date %v, got %v", event.StartDate, got.StartDate)
	}
}

func TestGetEventNotFound(t *testing.T) {
	repo := testutil.NewTestRepository(t)

	if _, err := repo.GetEvent(context.Background(), "missing"); !stderrors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListEvents(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		ev := newTestEvent()
		ev.Name = name
		if err := repo.CreateEvent(ctx, ev); err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
	}

	events, err := repo.ListEvents(ctx)
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("expected 3 events, got %d", len(events))
	}
}

func TestUpdateEvent(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	event := newTestEvent()
	if err := repo.CreateEvent(ctx, event); err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	event.Name = "Renamed Cleanup"
	event.FeedbackURL = "https://docs.google.com/spreadsheets/d/feedback/edit"
	if err := repo.UpdateEvent(ctx, event); err != nil {
		t.Fatalf("failed to update event: %v", err)
	}

	got, err := repo.GetEvent(ctx, event.EventID)
	if err != nil {
		t.Fatalf("failed to get event: %v", err)
	}
	if got.Name != "Renamed Cleanup" {
		t.Errorf("expected renamed event, got %s", got.Name)
	}
	if got.FeedbackURL == "" {
		t.Error("expected feedback URL to be saved")
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	repo := testutil.NewTestRepository(t)

	event := newTestEvent()
	event.EventID = "missing"
	if err := repo.UpdateEvent(context.Background(), event); !stderrors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSoftDeleteAndRestoreEvent(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	event := newTestEvent()
	if err := repo.CreateEvent(ctx, event); err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	if err := repo.SetEventStatus(ctx, event.EventID, models.StatusDeleted); err != nil {
		t.Fatalf("failed to soft delete: %v", err)
	}
	got, err := repo.GetEvent(ctx, event.EventID)
	if err != nil {
		t.Fatalf("soft-deleted event should still be readable: %v", err)
	}
	if got.StatusID != models.StatusDeleted {
		t.Errorf("expected deleted status, got %d", got.StatusID)
	}

	if err := repo.SetEventStatus(ctx, event.EventID, models.StatusActive); err != nil {
		t.Fatalf("failed to restore: %v", err)
	}
	got, err = repo.GetEvent(ctx, event.EventID)
	if err != nil {
		t.Fatalf("failed to get event: %v", err)
	}
	if got.StatusID != models.StatusActive {
		t.Errorf("expected active status after restore, got %d", got.StatusID)
	}
}

func TestHardDeleteEventCascades(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	event := newTestEvent()
	if err := repo.CreateEvent(ctx, event); err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	profile := &models.Profile{FirstName: "Jane", LastName: "Doe", AdminNumber: "A001"}
	if err := repo.CreateProfile(ctx, profile); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	report := &models.EventReport{EventID: event.EventID, SignupCount: 1, FeedbackCount: 1}
	if err := repo.CreateReport(ctx, report); err != nil {
		t.Fatalf("failed to create report: %v", err)
	}
	rec := &models.Participation{ProfileID: profile.ProfileID, ReportID: report.ReportID, Attended: true, PointsAwarded: 1}
	if err := repo.CreateParticipation(ctx, rec); err != nil {
		t.Fatalf("failed to create participation: %v", err)
	}

	if err := repo.DeleteEvent(ctx, event.EventID); err != nil {
		t.Fatalf("failed to hard delete event: %v", err)
	}

	if _, err := repo.GetEvent(ctx, event.EventID); !stderrors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected event gone, got %v", err)
	}
	if _, err := repo.GetReport(ctx, report.ReportID); !stderrors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected report cascaded away, got %v", err)
	}
	recs, err := repo.ListParticipationByReport(ctx, report.ReportID)
	if err != nil {
		t.Fatalf("failed to list participation: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected participation cascaded away, got %d records", len(recs))
	}

	// The profile is independent of the event and survives
	if _, err := repo.GetProfileByID(ctx, profile.ProfileID); err != nil {
		t.Errorf("expected profile to survive event deletion: %v", err)
	}
}

// ==================== Report Tests ====================

func TestCreateAndGetReport(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	event := newTestEvent()
	if err := repo.CreateEvent(ctx, event); err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	report := &models.EventReport{EventID: event.EventID, SignupCount: 10, FeedbackCount: 7}
	if err := repo.CreateReport(ctx, report); err != nil {
		t.Fatalf("failed to create report: %v", err)
	}
	if report.ReportID == "" {
		t.Fatal("expected report ID to be assigned")
	}
	if report.CreatedAt.IsZero() {
		t.Fatal("expected created time to be assigned")
	}

	got, err := repo.GetReport(ctx, report.ReportID)
	if err != nil {
		t.Fatalf("failed to get report: %v", err)
	}
	if got.SignupCount != 10 || got.FeedbackCount != 7 {
		t.Errorf("unexpected report: %+v", got)
	}
}

func TestListReportsByEvent(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	event := newTestEvent()
	if err := repo.CreateEvent(ctx, event); err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		report := &models.EventReport{
			EventID:     event.EventID,
			SignupCount: i + 1,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}
		if err := repo.CreateReport(ctx, report); err != nil {
			t.Fatalf("failed to create report: %v", err)
		}
	}

	reports, err := repo.ListReportsByEvent(ctx, event.EventID)
	if err != nil {
		t.Fatalf("failed to list reports: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}
	// Newest first
	if reports[0].SignupCount != 3 {
		t.Errorf("expected newest report first, got signup count %d", reports[0].SignupCount)
	}
}

func TestCreateParticipationDefaults(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	ctx := context.Background()

	event := newTestEvent()
	if err := repo.CreateEvent(ctx, event); err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	profile := &models.Profile{FirstName: "Jane", LastName: "Doe", AdminNumber: "A001"}
	if err := repo.CreateProfile(ctx, profile); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	report := &models.EventReport{EventID: event.EventID}
	if err := repo.CreateReport(ctx, report); err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	rec := &models.Participation{ProfileID: profile.ProfileID, ReportID: report.ReportID}
	if err := repo.CreateParticipation(ctx, rec); err != nil {
		t.Fatalf("failed to create participation: %v", err)
	}
	if rec.ParticipationID == "" {
		t.Fatal("expected participation ID to be assigned")
	}
	if rec.EventRole != models.EventRoleParticipant {
		t.Errorf("expected default role PARTICIPANT, got %s", rec.EventRole)
	}

	recs, err := repo.ListParticipationByReport(ctx, report.ReportID)
	if err != nil {
		t.Fatalf("failed to list participation: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Attended {
		t.Error("expected attended to default to false")
	}
	if recs[0].PointsAwarded != 0 {
		t.Errorf("expected 0 points, got %d", recs[0].PointsAwarded)
	}
}
