// Package repository implements the data access layer for the job board API.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles CRUD operations for a specific domain entity.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (Create, GetByID, Delete, etc.)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
//   - FETCH to resolve record references (e.g. a job's created_by user)
//
// # Example Usage
//
//	repo := NewJobRepository(db)
//	job, err := repo.GetByID(ctx, "job:abc123")
//	if err != nil {
//	    return err
//	}
//	if job == nil {
//	    // Handle not found
//	}
package repository
