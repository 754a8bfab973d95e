// ABOUTME: SQLite implementation of the Store interface using modernc.org/sqlite
// ABOUTME: Provides user/job/application persistence with automatic schema creation

package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// Store interface compliance.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite store at the given path.
// The schema is automatically created if it doesn't exist.
// Parent directories are created if needed.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	logger := slog.Default().With("component", "store")

	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("SQLite store initialized", "path", path)
	return s, nil
}

// createSchema creates the database tables if they don't exist
func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone TEXT NOT NULL,
			role TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			category TEXT NOT NULL,
			country TEXT NOT NULL,
			city TEXT NOT NULL,
			location TEXT NOT NULL,
			fixed_salary INTEGER NOT NULL DEFAULT 0,
			salary_from INTEGER NOT NULL DEFAULT 0,
			salary_to INTEGER NOT NULL DEFAULT 0,
			expired INTEGER NOT NULL DEFAULT 0,
			posted_by TEXT NOT NULL,
			posted_at DATETIME NOT NULL,
			FOREIGN KEY (posted_by) REFERENCES users(id)
		);

		CREATE INDEX IF NOT EXISTS idx_jobs_posted_by
			ON jobs(posted_by);

		CREATE TABLE IF NOT EXISTS applications (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL,
			cover_letter TEXT NOT NULL,
			job_id TEXT NOT NULL,
			applicant_id TEXT NOT NULL,
			employer_id TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (job_id) REFERENCES jobs(id),
			FOREIGN KEY (applicant_id) REFERENCES users(id),
			FOREIGN KEY (employer_id) REFERENCES users(id)
		);

		CREATE INDEX IF NOT EXISTS idx_applications_applicant
			ON applications(applicant_id);

		CREATE INDEX IF NOT EXISTS idx_applications_employer
			ON applications(employer_id);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

// isUniqueConstraintError reports whether err is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
