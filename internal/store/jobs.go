// ABOUTME: Job posting persistence methods on SQLiteStore
// ABOUTME: Backs the employer posting flow and public job listing

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const jobColumns = `id, title, description, category, country, city, location,
	fixed_salary, salary_from, salary_to, expired, posted_by, posted_at`

// CreateJob inserts a new job posting.
func (s *SQLiteStore) CreateJob(ctx context.Context, job *Job) error {
	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		job.ID,
		job.Title,
		job.Description,
		job.Category,
		job.Country,
		job.City,
		job.Location,
		job.FixedSalary,
		job.SalaryFrom,
		job.SalaryTo,
		job.Expired,
		job.PostedBy,
		job.PostedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting job: %w", err)
	}

	s.logger.Info("created job", "id", job.ID, "title", job.Title, "posted_by", job.PostedBy)
	return nil
}

// GetJob retrieves a job by ID.
func (s *SQLiteStore) GetJob(ctx context.Context, id string) (*Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`

	job, err := scanJob(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying job: %w", err)
	}
	return job, nil
}

// ListActiveJobs returns all non-expired jobs, newest first.
func (s *SQLiteStore) ListActiveJobs(ctx context.Context) ([]*Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE expired = 0 ORDER BY posted_at DESC`
	return s.queryJobs(ctx, query)
}

// ListJobsByPoster returns all jobs posted by the given user, newest first.
func (s *SQLiteStore) ListJobsByPoster(ctx context.Context, userID string) ([]*Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE posted_by = ? ORDER BY posted_at DESC`
	return s.queryJobs(ctx, query, userID)
}

// UpdateJob updates an existing job. Returns ErrJobNotFound if it doesn't exist.
func (s *SQLiteStore) UpdateJob(ctx context.Context, job *Job) error {
	query := `
		UPDATE jobs
		SET title = ?, description = ?, category = ?, country = ?, city = ?,
			location = ?, fixed_salary = ?, salary_from = ?, salary_to = ?, expired = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		job.Title,
		job.Description,
		job.Category,
		job.Country,
		job.City,
		job.Location,
		job.FixedSalary,
		job.SalaryFrom,
		job.SalaryTo,
		job.Expired,
		job.ID,
	)
	if err != nil {
		return fmt.Errorf("updating job: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}

	s.logger.Info("updated job", "id", job.ID)
	return nil
}

// DeleteJob removes a job. Returns ErrJobNotFound if it doesn't exist.
func (s *SQLiteStore) DeleteJob(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting job: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}

	s.logger.Info("deleted job", "id", id)
	return nil
}

// queryJobs runs a query returning job rows and scans them all.
func (s *SQLiteStore) queryJobs(ctx context.Context, query string, args ...any) ([]*Job, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying jobs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var jobs []*Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating jobs: %w", err)
	}

	return jobs, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*Job, error) {
	var job Job
	var postedAtStr string

	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Category,
		&job.Country,
		&job.City,
		&job.Location,
		&job.FixedSalary,
		&job.SalaryFrom,
		&job.SalaryTo,
		&job.Expired,
		&job.PostedBy,
		&postedAtStr,
	)
	if err != nil {
		return nil, err
	}

	job.PostedAt, err = time.Parse(time.RFC3339, postedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing posted_at: %w", err)
	}

	return &job, nil
}
