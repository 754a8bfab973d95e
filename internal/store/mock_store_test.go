// ABOUTME: Unit tests for MockStore to ensure behavior matches SQLiteStore
// ABOUTME: Focuses on duplicate detection, hash stripping, and copy semantics

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockUser(id string, role Role) *User {
	return &User{
		ID:           id,
		Name:         "User " + id,
		Email:        id + "@example.com",
		Phone:        "555-0100",
		Role:         role,
		PasswordHash: "$2a$10$somehash",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestMockStore_CreateUser_DuplicateEmail(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, mockUser("u1", RoleJobSeeker)))

	// Different ID, same email
	dup := mockUser("u2", RoleEmployer)
	dup.Email = "u1@example.com"
	err := store.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestMockStore_GetUser_StripsPasswordHash(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, mockUser("u1", RoleJobSeeker)))

	got, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got.PasswordHash, "default reads must not expose the hash")

	byEmail, err := store.GetUserByEmail(ctx, "u1@example.com")
	require.NoError(t, err)
	assert.Empty(t, byEmail.PasswordHash)

	withHash, err := store.GetUserByEmailWithPassword(ctx, "u1@example.com")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$somehash", withHash.PasswordHash)
}

func TestMockStore_ReturnsCopies(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, mockUser("u1", RoleJobSeeker)))

	got, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "User u1", again.Name, "mutating a returned user must not affect the store")
}

func TestMockStore_ListActiveJobs_SortedNewestFirst(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	base := time.Now().UTC()
	for i, id := range []string{"old", "mid", "new"} {
		job := &Job{
			ID:       id,
			Title:    "Job " + id,
			PostedBy: "emp-1",
			PostedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, store.CreateJob(ctx, job))
	}

	expired := &Job{
		ID:       "expired",
		Title:    "Job expired",
		PostedBy: "emp-1",
		PostedAt: base.Add(3 * time.Hour),
		Expired:  true,
	}
	require.NoError(t, store.CreateJob(ctx, expired))

	jobs, err := store.ListActiveJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "new", jobs[0].ID)
	assert.Equal(t, "mid", jobs[1].ID)
	assert.Equal(t, "old", jobs[2].ID)
}

func TestMockStore_DeleteJob_NotFound(t *testing.T) {
	store := NewMockStore()

	err := store.DeleteJob(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestMockStore_ApplicationLists(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	apps := []*Application{
		{ID: "a1", JobID: "j1", ApplicantID: "seek-1", EmployerID: "emp-1", CreatedAt: time.Now().UTC()},
		{ID: "a2", JobID: "j2", ApplicantID: "seek-1", EmployerID: "emp-2", CreatedAt: time.Now().UTC()},
		{ID: "a3", JobID: "j3", ApplicantID: "seek-2", EmployerID: "emp-1", CreatedAt: time.Now().UTC()},
	}
	for _, app := range apps {
		require.NoError(t, store.CreateApplication(ctx, app))
	}

	byApplicant, err := store.ListApplicationsByApplicant(ctx, "seek-1")
	require.NoError(t, err)
	assert.Len(t, byApplicant, 2)

	byEmployer, err := store.ListApplicationsByEmployer(ctx, "emp-1")
	require.NoError(t, err)
	assert.Len(t, byEmployer, 2)

	require.NoError(t, store.DeleteApplication(ctx, "a1"))
	_, err = store.GetApplication(ctx, "a1")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
