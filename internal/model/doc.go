// Package model defines domain entities and data structures for the job
// board API.
//
// The model package contains all struct definitions for domain objects and
// error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
//   - User: Application user with authentication credentials and a role
//     (recruiter or jobseeker)
//   - Job: A job posting owned by the recruiter who created it
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Job struct {
//	    ID    string `json:"id"`
//	    Title string `json:"title"`
//	}
//
// # Error Types
//
// APIError in errors.go defines the uniform failure envelope every endpoint
// returns: {"success": false, "message": "...", "error": "..."}.
package model
