package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/jobboard/internal/database"
	"github.com/openhire/jobboard/internal/model"
	"github.com/openhire/jobboard/internal/repository"
	"github.com/openhire/jobboard/internal/testing/fixtures"
	"github.com/openhire/jobboard/internal/testing/testdb"
)

// These tests run real queries against a SurrealDB instance and are
// skipped unless TEST_DB_HOST is set.

func TestUserRepository_CreateAndFetch(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewUserRepository(tdb.DB)
	ctx := context.Background()

	user := &model.User{
		Name:  "Alice",
		Email: "alice@test.local",
		Hash:  "$2a$04$fakehashforintegration",
		Role:  model.UserRoleRecruiter,
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "alice@test.local")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, model.UserRoleRecruiter, byEmail.Role)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Alice", byID.Name)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewUserRepository(tdb.DB)
	ctx := context.Background()

	first := &model.User{Name: "Alice", Email: "dup@test.local", Hash: "h", Role: model.UserRoleRecruiter}
	require.NoError(t, repo.Create(ctx, first))

	second := &model.User{Name: "Evil Alice", Email: "dup@test.local", Hash: "h", Role: model.UserRoleRecruiter}
	err := repo.Create(ctx, second)

	require.Error(t, err)
	assert.True(t, errors.Is(err, database.ErrDuplicate), "expected ErrDuplicate, got %v", err)
}

func TestUserRepository_GetByEmail_Missing(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewUserRepository(tdb.DB)

	user, err := repo.GetByEmail(context.Background(), "nobody@test.local")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestJobRepository_CreateAndList(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	recruiter := f.CreateRecruiter(t)

	repo := repository.NewJobRepository(tdb.DB)
	ctx := context.Background()

	older := f.CreateJob(t, recruiter, func(o *fixtures.JobOpts) {
		o.Title = "Older Posting"
	})
	// Creation timestamps need to differ for the ordering assertion.
	time.Sleep(10 * time.Millisecond)
	newer := f.CreateJob(t, recruiter, func(o *fixtures.JobOpts) {
		o.Title = "Newer Posting"
	})

	jobs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	// Newest first.
	assert.Equal(t, newer.ID, jobs[0].ID)
	assert.Equal(t, older.ID, jobs[1].ID)

	// The poster's public identity is resolved on listing.
	require.NotNil(t, jobs[0].Poster)
	assert.Equal(t, recruiter.Name, jobs[0].Poster.Name)
	assert.Equal(t, recruiter.Email, jobs[0].Poster.Email)
	assert.Equal(t, recruiter.ID, jobs[0].CreatedBy)
}

func TestJobRepository_ListByOwner(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	alice := f.CreateRecruiter(t)
	bob := f.CreateRecruiter(t)

	f.CreateJob(t, alice)
	f.CreateJob(t, alice)
	f.CreateJob(t, bob)

	repo := repository.NewJobRepository(tdb.DB)

	mine, err := repo.ListByOwner(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, j := range mine {
		assert.Equal(t, alice.ID, j.CreatedBy)
	}
}

func TestJobRepository_GetByIDAndDelete(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	recruiter := f.CreateRecruiter(t)
	job := f.CreateJob(t, recruiter)

	repo := repository.NewJobRepository(tdb.DB)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, job.Title, got.Title)

	require.NoError(t, repo.Delete(ctx, job.ID))

	gone, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
