// Package handler provides HTTP request handlers for the job board API.
//
// The handler package contains all HTTP endpoint implementations organized
// by domain. Each handler struct encapsulates the dependencies needed to
// serve requests for a specific feature area (authentication, jobs).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service it fronts
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped through MapServiceError to the API envelope
//
// # Response Format
//
// Every response is a JSON envelope. Success responses carry
// "success": true alongside the payload fields; failures carry
// "success": false, a human-readable "message", and an optional
// diagnostic "error" field.
//
// # Authentication
//
// Protected handlers run behind the middleware package's identity gates.
// The caller's ID is read with middleware.GetUserID(r.Context()) and is
// never taken from the request body.
//
// # Example Usage
//
//	handler := NewJobHandler(jobService)
//	mux.HandleFunc("GET /api/jobs", handler.ListAll)
package handler
