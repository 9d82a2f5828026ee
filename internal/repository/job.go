package repository

import (
	"context"
	"errors"

	"github.com/openhire/jobboard/internal/database"
	"github.com/openhire/jobboard/internal/model"
)

// JobRepository handles job posting data access
type JobRepository struct {
	db database.Database
}

// NewJobRepository creates a new job repository
func NewJobRepository(db database.Database) *JobRepository {
	return &JobRepository{db: db}
}

// Create persists a new job posting and fills in the generated ID and
// creation timestamp.
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	query := `
		CREATE job CONTENT {
			title: $title,
			description: $description,
			company: $company,
			location: $location,
			salary: $salary,
			created_by: type::record($created_by),
			created_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"title":       job.Title,
		"description": job.Description,
		"company":     job.Company,
		"location":    job.Location,
		"salary":      job.Salary,
		"created_by":  job.CreatedBy,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created := extractQueryResults(result)
	if len(created) == 0 {
		return errors.New("no result returned")
	}
	data, ok := created[0].(map[string]interface{})
	if !ok {
		return errors.New("unexpected result format")
	}

	job.ID = convertSurrealID(data["id"])
	job.CreatedAt = parseTime(data["created_at"])
	return nil
}

// ListAll returns every job posting, newest first, with created_by resolved
// to the referenced user's public name/email.
func (r *JobRepository) ListAll(ctx context.Context) ([]*model.Job, error) {
	query := `SELECT * FROM job ORDER BY created_at DESC FETCH created_by`
	return r.list(ctx, query, nil)
}

// ListByOwner returns job postings created by the given user, newest first,
// with the same created_by resolution as ListAll.
func (r *JobRepository) ListByOwner(ctx context.Context, ownerID string) ([]*model.Job, error) {
	query := `SELECT * FROM job WHERE created_by = type::record($owner) ORDER BY created_at DESC FETCH created_by`
	vars := map[string]interface{}{"owner": ownerID}
	return r.list(ctx, query, vars)
}

// GetByID retrieves a job by ID. Returns nil when no such job exists.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return parseJobRecord(data), nil
}

// Delete removes a job posting by ID.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

func (r *JobRepository) list(ctx context.Context, query string, vars map[string]interface{}) ([]*model.Job, error) {
	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := extractQueryResults(result)
	jobs := make([]*model.Job, 0, len(records))
	for _, record := range records {
		data, ok := record.(map[string]interface{})
		if !ok {
			continue
		}
		jobs = append(jobs, parseJobRecord(data))
	}

	return jobs, nil
}

// parseJobRecord converts a SurrealDB job record to a model.Job. The
// created_by field is either a record reference or, after FETCH, the
// embedded user document.
func parseJobRecord(data map[string]interface{}) *model.Job {
	job := &model.Job{
		ID:          convertSurrealID(data["id"]),
		Title:       extractString(data, "title"),
		Description: extractString(data, "description"),
		Company:     extractString(data, "company"),
		Location:    extractString(data, "location"),
		Salary:      parseFloat(data["salary"]),
		CreatedAt:   parseTime(data["created_at"]),
	}

	switch creator := data["created_by"].(type) {
	case map[string]interface{}:
		// Fetched user document: keep the reference and resolve the
		// poster's public name/email.
		if _, fetched := creator["email"]; fetched {
			job.CreatedBy = convertSurrealID(creator["id"])
			job.Poster = &model.UserPublic{
				ID:    job.CreatedBy,
				Name:  extractString(creator, "name"),
				Email: extractString(creator, "email"),
			}
			return job
		}
		job.CreatedBy = convertSurrealID(creator)
	default:
		job.CreatedBy = convertSurrealID(data["created_by"])
	}

	return job
}
