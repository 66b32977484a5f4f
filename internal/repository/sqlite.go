package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/mattn/go-sqlite3"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite works best with single connection
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	// Run migrations
	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations and seeds the reference tables
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS status (
			status_id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			role_id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS event_types (
			event_type_id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_profiles (
			profile_id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			course TEXT,
			ichat TEXT,
			admin_number TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id TEXT PRIMARY KEY,
			profile_id TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			status_id INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (profile_id) REFERENCES user_profiles(profile_id) ON DELETE CASCADE,
			FOREIGN KEY (status_id) REFERENCES status(status_id)
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id TEXT NOT NULL,
			role_id INTEGER NOT NULL DEFAULT 1,
			PRIMARY KEY (user_id, role_id),
			FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE,
			FOREIGN KEY (role_id) REFERENCES roles(role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			event_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			event_type_id INTEGER NOT NULL,
			description TEXT,
			start_date DATETIME,
			end_date DATETIME,
			platform TEXT,
			signup_url TEXT,
			feedback_url TEXT,
			helpers_url TEXT,
			created_by TEXT,
			status_id INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (event_type_id) REFERENCES event_types(event_type_id),
			FOREIGN KEY (created_by) REFERENCES users(user_id) ON DELETE SET NULL,
			FOREIGN KEY (status_id) REFERENCES status(status_id)
		)`,
		`CREATE TABLE IF NOT EXISTS event_reports (
			report_id TEXT PRIMARY KEY,
			event_id TEXT NOT NULL,
			signup_count INTEGER,
			feedback_count INTEGER,
			created_by TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (event_id) REFERENCES events(event_id) ON DELETE CASCADE,
			FOREIGN KEY (created_by) REFERENCES users(user_id) ON DELETE SET NULL
		)`,
		`CREATE TABLE IF NOT EXISTS event_participation (
			participation_id TEXT PRIMARY KEY,
			profile_id TEXT NOT NULL,
			report_id TEXT NOT NULL,
			attended BOOLEAN DEFAULT 0,
			event_role TEXT DEFAULT 'PARTICIPANT',
			points_awarded INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (profile_id) REFERENCES user_profiles(profile_id) ON DELETE CASCADE,
			FOREIGN KEY (report_id) REFERENCES event_reports(report_id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_admin_number ON user_profiles(admin_number)`,
		`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_event ON event_reports(event_id)`,
		`CREATE INDEX IF NOT EXISTS idx_participation_report ON event_participation(report_id)`,
		`CREATE INDEX IF NOT EXISTS idx_participation_profile ON event_participation(profile_id)`,

		// Reference data
		`INSERT OR IGNORE INTO status (status_id, name) VALUES (1, 'ACTIVE'), (2, 'DELETED')`,
		`INSERT OR IGNORE INTO roles (role_id, name) VALUES (1, 'USER'), (2, 'ADMIN'), (3, 'SUPERADMIN')`,
		`INSERT OR IGNORE INTO event_types (event_type_id, name) VALUES
			(1, 'Volunteering'), (2, 'Community Service'), (3, 'Workshop'), (4, 'Outreach')`,
		`INSERT OR IGNORE INTO courses (code, name) VALUES
			('DIT', 'Diploma in Information Technology'),
			('DISM', 'Diploma in Infocomm Security Management'),
			('DAAA', 'Diploma in Applied AI and Analytics'),
			('DCDF', 'Diploma in Cybersecurity and Digital Forensics')`,
	}

	for _, m := range migrations {
		if _, err := r.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a sqlite uniqueness violation
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if stderrors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
