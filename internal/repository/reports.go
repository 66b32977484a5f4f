package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/auxilium-app/auxilium/internal/models"
)

// CreateReport inserts a new event report and assigns its ID.
// Reports are immutable once created.
func (r *Repository) CreateReport(ctx context.Context, report *models.EventReport) error {
	if report.ReportID == "" {
		report.ReportID = uuid.NewString()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO event_reports (report_id, event_id, signup_count, feedback_count, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		report.ReportID, report.EventID, report.SignupCount, report.FeedbackCount,
		nullIfEmpty(report.CreatedBy), report.CreatedAt)
	return err
}

// GetReport looks up a single event report by ID
func (r *Repository) GetReport(ctx context.Context, reportID string) (*models.EventReport, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT report_id, event_id, signup_count, feedback_count, COALESCE(created_by, ''), created_at
		FROM event_reports WHERE report_id = ?`, reportID)

	var rep models.EventReport
	err := row.Scan(&rep.ReportID, &rep.EventID, &rep.SignupCount, &rep.FeedbackCount,
		&rep.CreatedBy, &rep.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// ListReportsByEvent returns all reports generated for an event, newest first
func (r *Repository) ListReportsByEvent(ctx context.Context, eventID string) ([]models.EventReport, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT report_id, event_id, signup_count, feedback_count, COALESCE(created_by, ''), created_at
		FROM event_reports WHERE event_id = ? ORDER BY created_at DESC`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []models.EventReport
	for rows.Next() {
		var rep models.EventReport
		if err := rows.Scan(&rep.ReportID, &rep.EventID, &rep.SignupCount, &rep.FeedbackCount,
			&rep.CreatedBy, &rep.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

// CreateParticipation inserts one participation record against a report
func (r *Repository) CreateParticipation(ctx context.Context, rec *models.Participation) error {
	if rec.ParticipationID == "" {
		rec.ParticipationID = uuid.NewString()
	}
	if rec.EventRole == "" {
		rec.EventRole = models.EventRoleParticipant
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO event_participation (participation_id, profile_id, report_id, attended, event_role, points_awarded)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ParticipationID, rec.ProfileID, rec.ReportID, rec.Attended, rec.EventRole, rec.PointsAwarded)
	return err
}

// ListParticipationByReport returns all participation records under a report
func (r *Repository) ListParticipationByReport(ctx context.Context, reportID string) ([]models.Participation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT participation_id, profile_id, report_id, attended, event_role, points_awarded
		FROM event_participation WHERE report_id = ? ORDER BY created_at`, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []models.Participation
	for rows.Next() {
		var rec models.Participation
		if err := rows.Scan(&rec.ParticipationID, &rec.ProfileID, &rec.ReportID,
			&rec.Attended, &rec.EventRole, &rec.PointsAwarded); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
