package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// TestListEvents_ScanError tests row scanning error
func TestListEvents_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	// event_type_id should be an int, not a string
	rows := sqlmock.NewRows([]string{
		"event_id", "name", "event_type_id", "description", "start_date", "end_date",
		"platform", "signup_url", "feedback_url", "helpers_url", "created_by", "status_id",
	}).AddRow("ev-1", "Cleanup", "not-a-number", "", nil, nil, "", "", "", "", "", 1)

	mock.ExpectQuery("SELECT (.+) FROM events").WillReturnRows(rows)

	if _, err := repo.ListEvents(ctx); err == nil {
		t.Error("expected error from scan failure, got nil")
	}
}

// TestListEvents_QueryError tests query failure propagation
func TestListEvents_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}

	mock.ExpectQuery("SELECT (.+) FROM events").WillReturnError(fmt.Errorf("disk I/O error"))

	if _, err := repo.ListEvents(context.Background()); err == nil {
		t.Error("expected query error, got nil")
	}
}

// TestListReportsByEvent_ScanError tests row scanning error
func TestListReportsByEvent_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}

	rows := sqlmock.NewRows([]string{
		"report_id", "event_id", "signup_count", "feedback_count", "created_by", "created_at",
	}).AddRow("rep-1", "ev-1", "not-a-number", 0, "", nil)

	mock.ExpectQuery("SELECT (.+) FROM event_reports").WillReturnRows(rows)

	if _, err := repo.ListReportsByEvent(context.Background(), "ev-1"); err == nil {
		t.Error("expected error from scan failure, got nil")
	}
}

// TestListParticipationByReport_ScanError tests row scanning error
func TestListParticipationByReport_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}

	rows := sqlmock.NewRows([]string{
		"participation_id", "profile_id", "report_id", "attended", "event_role", "points_awarded",
	}).AddRow("p-1", "pr-1", "rep-1", false, "PARTICIPANT", "not-a-number")

	mock.ExpectQuery("SELECT (.+) FROM event_participation").WillReturnRows(rows)

	if _, err := repo.ListParticipationByReport(context.Background(), "rep-1"); err == nil {
		t.Error("expected error from scan failure, got nil")
	}
}

// TestCountUsersWithRole_QueryError tests query failure propagation
func TestCountUsersWithRole_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}

	mock.ExpectQuery("SELECT COUNT(.+) FROM user_roles").WillReturnError(fmt.Errorf("database locked"))

	if _, err := repo.CountUsersWithRole(context.Background(), 3); err == nil {
		t.Error("expected query error, got nil")
	}
}
