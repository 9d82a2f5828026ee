package handler

import (
	"net/http"

	"github.com/openhire/jobboard/internal/database"
)

// HealthHandler reports service liveness and storage reachability
type HealthHandler struct {
	db database.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db database.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	httpStatus := http.StatusOK

	if err := h.db.Ping(r.Context()); err != nil {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	WriteJSON(w, httpStatus, map[string]interface{}{
		"success": httpStatus == http.StatusOK,
		"status":  status,
	})
}
