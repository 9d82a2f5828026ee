// Package middleware provides HTTP middleware for the job board API.
//
// The middleware package contains reusable middleware components for
// authentication, authorization, and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - RequestID: Unique request ID generation and propagation
//   - Logger: Structured request logging via slog
//   - Recovery: Panic recovery with a JSON 500 response
//   - CORS: Cross-origin request handling
//
// # Authentication and Authorization
//
// Identity middleware is built by an Authenticator wrapping a token
// verifier:
//
//	auth := middleware.NewAuthenticator(codec)
//	mux.Handle("POST /api/jobs", auth.RequireRole("recruiter")(create))
//
// RequireRole composes the authentication stage in front of the role
// check, so a role-gated route always carries token verification too.
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns the authenticated user's ID
//   - GetUserRole(ctx): Returns the authenticated user's role
//   - GetClaims(ctx): Returns the verified token claims
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware
