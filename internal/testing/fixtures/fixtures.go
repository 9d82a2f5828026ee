// Package fixtures provides test data factories for integration testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories go through the repository
// layer, so fixture data takes the same shape as production data.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	recruiter := f.CreateRecruiter(t)
//	job := f.CreateJob(t, recruiter)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/openhire/jobboard/internal/database"
	"github.com/openhire/jobboard/internal/model"
	"github.com/openhire/jobboard/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	users *repository.UserRepository
	jobs  *repository.JobRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		users: repository.NewUserRepository(db),
		jobs:  repository.NewJobRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Name     string
	Email    string
	Password string
	Role     model.UserRole
}

// CreateUser creates a user with optional customizations
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	id := randomID()
	o := &UserOpts{
		Name:     fmt.Sprintf("User %s", id),
		Email:    fmt.Sprintf("user_%s@test.local", id),
		Password: "testpass123",
		Role:     model.UserRoleJobseeker,
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	user := &model.User{
		Name:  o.Name,
		Email: o.Email,
		Hash:  string(hash),
		Role:  o.Role,
	}
	if err := f.users.Create(ctx(), user); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}
	return user
}

// CreateRecruiter creates a user with the recruiter role
func (f *Factory) CreateRecruiter(t *testing.T) *model.User {
	return f.CreateUser(t, func(o *UserOpts) {
		o.Role = model.UserRoleRecruiter
	})
}

// ============================================================================
// Job Fixtures
// ============================================================================

// JobOpts customizes job creation
type JobOpts struct {
	Title       string
	Description string
	Company     string
	Location    string
	Salary      float64
}

// CreateJob creates a job posting owned by the given user
func (f *Factory) CreateJob(t *testing.T, owner *model.User, opts ...func(*JobOpts)) *model.Job {
	t.Helper()

	o := &JobOpts{
		Title:       fmt.Sprintf("Engineer %s", randomID()),
		Description: "Build and maintain services",
		Company:     "Acme",
		Location:    "Remote",
		Salary:      100000,
	}
	for _, fn := range opts {
		fn(o)
	}

	job := &model.Job{
		Title:       o.Title,
		Description: o.Description,
		Company:     o.Company,
		Location:    o.Location,
		Salary:      o.Salary,
		CreatedBy:   owner.ID,
	}
	if err := f.jobs.Create(ctx(), job); err != nil {
		t.Fatalf("fixtures: failed to create job: %v", err)
	}
	return job
}
