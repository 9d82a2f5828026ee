package handler

import (
	"log/slog"
	"net/http"

	"github.com/openhire/jobboard/internal/middleware"
	"github.com/openhire/jobboard/internal/model"
	"github.com/openhire/jobboard/internal/service"
)

// JobHandler handles job posting endpoints
type JobHandler struct {
	jobService *service.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// CreateJobRequest represents the job creation request body. The owner
// is never read from the body; it comes from the verified token.
type CreateJobRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Salary      float64 `json:"salary"`
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	job, err := h.jobService.CreateJob(r.Context(), service.CreateJobRequest{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
		CreatedBy:   middleware.GetUserID(r.Context()),
	})
	if err != nil {
		h.writeJobError(w, r, err, "Failed to create job")
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"message": "Job posted successfully",
		"job":     job,
	})
}

// ListAll handles GET /api/jobs. Public; no identity required.
func (h *JobHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.ListAllJobs(r.Context())
	if err != nil {
		h.writeJobError(w, r, err, "Failed to fetch jobs")
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"count": len(jobs),
		"jobs":  jobs,
	})
}

// ListMine handles GET /api/jobs/my
func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.ListMyJobs(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		h.writeJobError(w, r, err, "Failed to fetch your jobs")
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"count": len(jobs),
		"jobs":  jobs,
	})
}

// Delete handles DELETE /api/jobs/{jobId}
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("jobId")
	if jobID == "" {
		WriteError(w, model.NewBadRequestError("Job ID is required"))
		return
	}

	err := h.jobService.DeleteJob(r.Context(), jobID, middleware.GetUserID(r.Context()))
	if err != nil {
		h.writeJobError(w, r, err, "Failed to delete job")
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Job deleted successfully",
	})
}

// writeJobError maps service errors to API responses, substituting an
// operation-specific message for unexpected storage failures.
func (h *JobHandler) writeJobError(w http.ResponseWriter, r *http.Request, err error, storageMessage string) {
	apiErr := MapServiceError(err)
	if apiErr.Status >= http.StatusInternalServerError {
		slog.Error(storageMessage,
			slog.Any("error", err),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		apiErr = model.NewStorageError(storageMessage, err)
	}
	WriteError(w, apiErr)
}
