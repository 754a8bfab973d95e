// ABOUTME: Application persistence methods on SQLiteStore
// ABOUTME: Backs the job seeker apply flow and employer application review

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const applicationColumns = `id, name, email, phone, address, cover_letter,
	job_id, applicant_id, employer_id, created_at`

// CreateApplication inserts a new application.
func (s *SQLiteStore) CreateApplication(ctx context.Context, app *Application) error {
	query := `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		app.ID,
		app.Name,
		app.Email,
		app.Phone,
		app.Address,
		app.CoverLetter,
		app.JobID,
		app.ApplicantID,
		app.EmployerID,
		app.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting application: %w", err)
	}

	s.logger.Info("created application", "id", app.ID, "job_id", app.JobID, "applicant_id", app.ApplicantID)
	return nil
}

// GetApplication retrieves an application by ID.
func (s *SQLiteStore) GetApplication(ctx context.Context, id string) (*Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = ?`

	app, err := scanApplication(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying application: %w", err)
	}
	return app, nil
}

// ListApplicationsByApplicant returns all applications submitted by the given user.
func (s *SQLiteStore) ListApplicationsByApplicant(ctx context.Context, userID string) ([]*Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE applicant_id = ? ORDER BY created_at DESC`
	return s.queryApplications(ctx, query, userID)
}

// ListApplicationsByEmployer returns all applications targeting the given employer's jobs.
func (s *SQLiteStore) ListApplicationsByEmployer(ctx context.Context, userID string) ([]*Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE employer_id = ? ORDER BY created_at DESC`
	return s.queryApplications(ctx, query, userID)
}

// DeleteApplication removes an application. Returns ErrApplicationNotFound if
// it doesn't exist.
func (s *SQLiteStore) DeleteApplication(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting application: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrApplicationNotFound
	}

	s.logger.Info("deleted application", "id", id)
	return nil
}

func (s *SQLiteStore) queryApplications(ctx context.Context, query string, args ...any) ([]*Application, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying applications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var apps []*Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning application: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating applications: %w", err)
	}

	return apps, nil
}

func scanApplication(row rowScanner) (*Application, error) {
	var app Application
	var createdAtStr string

	err := row.Scan(
		&app.ID,
		&app.Name,
		&app.Email,
		&app.Phone,
		&app.Address,
		&app.CoverLetter,
		&app.JobID,
		&app.ApplicantID,
		&app.EmployerID,
		&createdAtStr,
	)
	if err != nil {
		return nil, err
	}

	app.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &app, nil
}
