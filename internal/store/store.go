// ABOUTME: Store interfaces and data types for hirelane persistence
// ABOUTME: Defines User, Job, Application structs and the Store interface for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrUserNotFound is returned when a requested user does not exist
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when trying to create a user with an email that is already registered
var ErrEmailExists = errors.New("email already registered")

// ErrJobNotFound is returned when a requested job does not exist
var ErrJobNotFound = errors.New("job not found")

// ErrApplicationNotFound is returned when a requested application does not exist
var ErrApplicationNotFound = errors.New("application not found")

// Role identifies which side of the job board a user belongs to
type Role string

const (
	RoleEmployer  Role = "Employer"
	RoleJobSeeker Role = "Job Seeker"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleJobSeeker
}

// User represents a registered account. PasswordHash is the bcrypt hash of the
// password and never crosses the HTTP boundary; default reads leave it empty.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Job represents a job posting. Salary is either FixedSalary or the
// SalaryFrom/SalaryTo range, never both.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Location    string    `json:"location"`
	FixedSalary int64     `json:"fixed_salary,omitempty"`
	SalaryFrom  int64     `json:"salary_from,omitempty"`
	SalaryTo    int64     `json:"salary_to,omitempty"`
	Expired     bool      `json:"expired"`
	PostedBy    string    `json:"posted_by"`
	PostedAt    time.Time `json:"posted_at"`
}

// Application represents a job seeker's application to a job.
type Application struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	CoverLetter string    `json:"cover_letter"`
	JobID       string    `json:"job_id"`
	ApplicantID string    `json:"applicant_id"`
	EmployerID  string    `json:"employer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserStore defines the credential store consumed by the auth layer.
type UserStore interface {
	// CreateUser inserts a new user. Returns ErrEmailExists if the email is taken.
	CreateUser(ctx context.Context, user *User) error

	// GetUser retrieves a user by ID with the password hash omitted.
	GetUser(ctx context.Context, id string) (*User, error)

	// GetUserByEmail retrieves a user by email with the password hash omitted.
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// GetUserByEmailWithPassword retrieves a user by email including the
	// password hash, for credential verification only.
	GetUserByEmailWithPassword(ctx context.Context, email string) (*User, error)
}

// JobStore defines job posting persistence.
type JobStore interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, id string) (*Job, error)
	ListActiveJobs(ctx context.Context) ([]*Job, error)
	ListJobsByPoster(ctx context.Context, userID string) ([]*Job, error)
	UpdateJob(ctx context.Context, job *Job) error
	DeleteJob(ctx context.Context, id string) error
}

// ApplicationStore defines application persistence.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *Application) error
	GetApplication(ctx context.Context, id string) (*Application, error)
	ListApplicationsByApplicant(ctx context.Context, userID string) ([]*Application, error)
	ListApplicationsByEmployer(ctx context.Context, userID string) ([]*Application, error)
	DeleteApplication(ctx context.Context, id string) error
}

// Store combines all persistence interfaces.
type Store interface {
	UserStore
	JobStore
	ApplicationStore

	// Close releases any resources held by the store
	Close() error
}
