package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/auxilium-app/auxilium/internal/models"
)

// CreateUserArgs carries everything needed to create a login account
// together with its profile and role assignment.
type CreateUserArgs struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Course       string
	IChat        string
	AdminNumber  string
	RoleID       int
}

// CreateUser creates the profile, the user and the role assignment in a
// single transaction; a failure rolls back all three.
// Returns ErrDuplicate when the email or admin number is already taken.
func (r *Repository) CreateUser(ctx context.Context, args CreateUserArgs) (*models.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	profileID := uuid.NewString()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_profiles (profile_id, first_name, last_name, course, ichat, admin_number)
		VALUES (?, ?, ?, ?, ?, ?)`,
		profileID, args.FirstName, args.LastName, args.Course, args.IChat, args.AdminNumber)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	userID := uuid.NewString()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (user_id, profile_id, email, password, status_id)
		VALUES (?, ?, ?, ?, ?)`,
		userID, profileID, args.Email, args.PasswordHash, models.StatusActive)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	roleID := args.RoleID
	if roleID == 0 {
		roleID = models.RoleUser
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO user_roles (user_id, role_id) VALUES (?, ?)`, userID, roleID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &models.User{
		UserID:    userID,
		ProfileID: profileID,
		Email:     args.Email,
		Password:  args.PasswordHash,
		StatusID:  models.StatusActive,
		RoleID:    roleID,
	}, nil
}

// GetUserByEmail looks up a user and their role by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT u.user_id, u.profile_id, u.email, u.password, u.status_id, ur.role_id
		FROM users u
		JOIN user_roles ur ON ur.user_id = u.user_id
		WHERE u.email = ?
		LIMIT 1`, email)
	return scanUser(row)
}

// GetUserByID looks up a user and their role by ID
func (r *Repository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT u.user_id, u.profile_id, u.email, u.password, u.status_id, ur.role_id
		FROM users u
		JOIN user_roles ur ON ur.user_id = u.user_id
		WHERE u.user_id = ?
		LIMIT 1`, userID)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.ProfileID, &u.Email, &u.Password, &u.StatusID, &u.RoleID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CountUsersWithRole counts accounts holding the given role
func (r *Repository) CountUsersWithRole(ctx context.Context, roleID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_roles WHERE role_id = ?`, roleID).Scan(&count)
	return count, err
}
