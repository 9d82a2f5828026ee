package model

import "time"

// Job represents a job posting. Jobs are created by recruiters, readable by
// anyone, and deletable only by the recruiter who created them. There is no
// update operation; a posting is immutable once created.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Salary      float64   `json:"salary"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`

	// Poster is the created_by reference resolved to the referenced
	// user's public name/email. Populated on listing reads only.
	Poster *UserPublic `json:"poster,omitempty"`
}
