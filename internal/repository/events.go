package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/auxilium-app/auxilium/internal/models"
)

const eventColumns = `event_id, name, event_type_id, COALESCE(description, ''), start_date, end_date,
	COALESCE(platform, ''), COALESCE(signup_url, ''), COALESCE(feedback_url, ''), COALESCE(helpers_url, ''),
	COALESCE(created_by, ''), status_id`

// CreateEvent inserts a new event and assigns its ID
func (r *Repository) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.StatusID == 0 {
		event.StatusID = models.StatusActive
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (event_id, name, event_type_id, description, start_date, end_date,
			platform, signup_url, feedback_url, helpers_url, created_by, status_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.EventID, event.Name, event.EventTypeID, event.Description,
		event.StartDate, event.EndDate, event.Platform,
		event.SignupURL, event.FeedbackURL, event.HelpersURL,
		nullIfEmpty(event.CreatedBy), event.StatusID)
	return err
}

// GetEvent looks up a single event by ID
func (r *Repository) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE event_id = ?`, eventID)
	return scanEvent(row.Scan)
}

// ListEvents returns all events, newest first
func (r *Repository) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		ev, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	return events, rows.Err()
}

func scanEvent(scan func(dest ...any) error) (*models.Event, error) {
	var ev models.Event
	err := scan(&ev.EventID, &ev.Name, &ev.EventTypeID, &ev.Description,
		&ev.StartDate, &ev.EndDate, &ev.Platform,
		&ev.SignupURL, &ev.FeedbackURL, &ev.HelpersURL,
		&ev.CreatedBy, &ev.StatusID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// UpdateEvent updates the mutable fields of an event
func (r *Repository) UpdateEvent(ctx context.Context, event *models.Event) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE events SET name = ?, event_type_id = ?, description = ?, start_date = ?, end_date = ?,
			platform = ?, signup_url = ?, feedback_url = ?, helpers_url = ?, updated_at = CURRENT_TIMESTAMP
		WHERE event_id = ?`,
		event.Name, event.EventTypeID, event.Description, event.StartDate, event.EndDate,
		event.Platform, event.SignupURL, event.FeedbackURL, event.HelpersURL, event.EventID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// SetEventStatus changes an event's status (soft delete and restore)
func (r *Repository) SetEventStatus(ctx context.Context, eventID string, statusID int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE events SET status_id = ?, updated_at = CURRENT_TIMESTAMP WHERE event_id = ?`,
		statusID, eventID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// DeleteEvent permanently removes an event and, through cascades, its
// reports and participation records
func (r *Repository) DeleteEvent(ctx context.Context, eventID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE event_id = ?`, eventID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
