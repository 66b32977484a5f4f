package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/auxilium-app/auxilium/internal/models"
)

// GetProfileByAdminNumber looks up a profile by its admin number
func (r *Repository) GetProfileByAdminNumber(ctx context.Context, adminNumber string) (*models.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT profile_id, first_name, last_name, COALESCE(course, ''), COALESCE(ichat, ''), admin_number
		FROM user_profiles WHERE admin_number = ?`, adminNumber)
	return scanProfile(row)
}

// GetProfileByID looks up a profile by its ID
func (r *Repository) GetProfileByID(ctx context.Context, profileID string) (*models.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT profile_id, first_name, last_name, COALESCE(course, ''), COALESCE(ichat, ''), admin_number
		FROM user_profiles WHERE profile_id = ?`, profileID)
	return scanProfile(row)
}

func scanProfile(row *sql.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.ProfileID, &p.FirstName, &p.LastName, &p.Course, &p.IChat, &p.AdminNumber)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProfile inserts a new profile and assigns its ID.
// Returns ErrDuplicate if a profile already exists for the admin number.
func (r *Repository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	if profile.ProfileID == "" {
		profile.ProfileID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (profile_id, first_name, last_name, course, ichat, admin_number)
		VALUES (?, ?, ?, ?, ?, ?)`,
		profile.ProfileID, profile.FirstName, profile.LastName, profile.Course, profile.IChat, profile.AdminNumber)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}
