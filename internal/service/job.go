package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/openhire/jobboard/internal/model"
)

// JobRepository defines the interface for job storage
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	ListAll(ctx context.Context) ([]*model.Job, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	Delete(ctx context.Context, id string) error
}

// JobService handles job posting operations
type JobService struct {
	jobRepo  JobRepository
	validate *validator.Validate
}

// NewJobService creates a new job service
func NewJobService(jobRepo JobRepository) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateJobRequest represents a job creation request. CreatedBy is the
// authenticated caller's subject ID, never a client-supplied value.
type CreateJobRequest struct {
	Title       string  `validate:"required"`
	Description string  `validate:"required"`
	Company     string  `validate:"required"`
	Location    string  `validate:"required"`
	Salary      float64 `validate:"required,gte=0"`
	CreatedBy   string
}

// CreateJob validates and persists a new job posting.
func (s *JobService) CreateJob(ctx context.Context, req CreateJobRequest) (*model.Job, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	job := &model.Job{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Company:     strings.TrimSpace(req.Company),
		Location:    strings.TrimSpace(req.Location),
		Salary:      req.Salary,
		CreatedBy:   req.CreatedBy,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// ListAllJobs returns every job posting, newest first, with the poster's
// public name/email resolved. Public; no identity required.
func (s *JobService) ListAllJobs(ctx context.Context) ([]*model.Job, error) {
	return s.jobRepo.ListAll(ctx)
}

// ListMyJobs returns the postings created by the given recruiter, newest first.
func (s *JobService) ListMyJobs(ctx context.Context, ownerID string) ([]*model.Job, error) {
	return s.jobRepo.ListByOwner(ctx, ownerID)
}

// DeleteJob removes a job posting. Ownership is checked against the stored
// record, not the caller's role: a recruiter cannot delete another
// recruiter's posting. Deletion is not idempotent: a second delete of the
// same ID reports ErrJobNotFound.
func (s *JobService) DeleteJob(ctx context.Context, jobID, callerID string) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}

	if job.CreatedBy != callerID {
		return ErrNotJobOwner
	}

	return s.jobRepo.Delete(ctx, jobID)
}

// toValidationError converts validator failures into the service's
// field-listing ValidationError.
func toValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]model.FieldError, 0, len(verrs))
	for _, ferr := range verrs {
		field := strings.ToLower(ferr.Field())
		switch ferr.Tag() {
		case "required":
			fields = append(fields, model.FieldError{
				Field:   field,
				Message: fmt.Sprintf("%s is required", field),
			})
		case "gte":
			fields = append(fields, model.FieldError{
				Field:   field,
				Message: fmt.Sprintf("%s must be non-negative", field),
			})
		default:
			fields = append(fields, model.FieldError{
				Field:   field,
				Message: fmt.Sprintf("%s is invalid", field),
			})
		}
	}

	return &ValidationError{Fields: fields}
}
