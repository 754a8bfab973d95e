// ABOUTME: Mock Store implementation for testing
// ABOUTME: Allows tests to run without SQLite

package store

import (
	"context"
	"sort"
	"sync"
)

// MockStore is an in-memory Store implementation for testing.
type MockStore struct {
	mu           sync.RWMutex
	users        map[string]*User        // keyed by user ID
	usersByEmail map[string]string       // keyed by email -> user ID
	jobs         map[string]*Job         // keyed by job ID
	applications map[string]*Application // keyed by application ID
}

// NewMockStore creates a new MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		users:        make(map[string]*User),
		usersByEmail: make(map[string]string),
		jobs:         make(map[string]*Job),
		applications: make(map[string]*Application),
	}
}

var _ Store = (*MockStore)(nil)

// CreateUser stores a new user.
func (m *MockStore) CreateUser(ctx context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.usersByEmail[user.Email]; exists {
		return ErrEmailExists
	}

	// Make a copy to avoid external modification
	u := *user
	m.users[u.ID] = &u
	m.usersByEmail[u.Email] = u.ID
	return nil
}

// GetUser retrieves a user by ID without the password hash.
func (m *MockStore) GetUser(ctx context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	result := *u
	result.PasswordHash = ""
	return &result, nil
}

// GetUserByEmail retrieves a user by email without the password hash.
func (m *MockStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.usersByEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}

	result := *m.users[id]
	result.PasswordHash = ""
	return &result, nil
}

// GetUserByEmailWithPassword retrieves a user by email including the password hash.
func (m *MockStore) GetUserByEmailWithPassword(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.usersByEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}

	result := *m.users[id]
	return &result, nil
}

// CreateJob stores a new job.
func (m *MockStore) CreateJob(ctx context.Context, job *Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	j := *job
	m.jobs[j.ID] = &j
	return nil
}

// GetJob retrieves a job by ID.
func (m *MockStore) GetJob(ctx context.Context, id string) (*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	j, ok := m.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}

	result := *j
	return &result, nil
}

// ListActiveJobs returns all non-expired jobs, newest first.
func (m *MockStore) ListActiveJobs(ctx context.Context) ([]*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var jobs []*Job
	for _, j := range m.jobs {
		if j.Expired {
			continue
		}
		job := *j
		jobs = append(jobs, &job)
	}
	sortJobsByPostedAt(jobs)
	return jobs, nil
}

// ListJobsByPoster returns all jobs posted by the given user, newest first.
func (m *MockStore) ListJobsByPoster(ctx context.Context, userID string) ([]*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var jobs []*Job
	for _, j := range m.jobs {
		if j.PostedBy != userID {
			continue
		}
		job := *j
		jobs = append(jobs, &job)
	}
	sortJobsByPostedAt(jobs)
	return jobs, nil
}

// UpdateJob replaces a stored job.
func (m *MockStore) UpdateJob(ctx context.Context, job *Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.jobs[job.ID]; !ok {
		return ErrJobNotFound
	}

	j := *job
	m.jobs[j.ID] = &j
	return nil
}

// DeleteJob removes a job.
func (m *MockStore) DeleteJob(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.jobs[id]; !ok {
		return ErrJobNotFound
	}
	delete(m.jobs, id)
	return nil
}

// CreateApplication stores a new application.
func (m *MockStore) CreateApplication(ctx context.Context, app *Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a := *app
	m.applications[a.ID] = &a
	return nil
}

// GetApplication retrieves an application by ID.
func (m *MockStore) GetApplication(ctx context.Context, id string) (*Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.applications[id]
	if !ok {
		return nil, ErrApplicationNotFound
	}

	result := *a
	return &result, nil
}

// ListApplicationsByApplicant returns applications submitted by the given user.
func (m *MockStore) ListApplicationsByApplicant(ctx context.Context, userID string) ([]*Application, error) {
	return m.listApplications(func(a *Application) bool { return a.ApplicantID == userID })
}

// ListApplicationsByEmployer returns applications targeting the given employer's jobs.
func (m *MockStore) ListApplicationsByEmployer(ctx context.Context, userID string) ([]*Application, error) {
	return m.listApplications(func(a *Application) bool { return a.EmployerID == userID })
}

func (m *MockStore) listApplications(match func(*Application) bool) ([]*Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var apps []*Application
	for _, a := range m.applications {
		if !match(a) {
			continue
		}
		app := *a
		apps = append(apps, &app)
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
	return apps, nil
}

// DeleteApplication removes an application.
func (m *MockStore) DeleteApplication(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.applications[id]; !ok {
		return ErrApplicationNotFound
	}
	delete(m.applications, id)
	return nil
}

// Close is a no-op for the mock store.
func (m *MockStore) Close() error {
	return nil
}

func sortJobsByPostedAt(jobs []*Job) {
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].PostedAt.After(jobs[j].PostedAt)
	})
}
