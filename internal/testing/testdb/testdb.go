// Package testdb provides test database utilities for integration testing.
//
// This package creates isolated SurrealDB test environments that run real
// queries against a real database instance, ensuring tests validate actual
// database behavior including unique indexes and record links.
//
// Integration tests are skipped unless TEST_DB_HOST is set:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    result, err := tdb.DB.Query(ctx, "SELECT * FROM job", nil)
//	}
package testdb

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/openhire/jobboard/internal/database"
)

// TestDB provides an isolated database environment for testing.
// Each TestDB instance gets a unique namespace to ensure test isolation.
type TestDB struct {
	DB        database.Database
	Namespace string
	Database  string
	t         *testing.T
}

var (
	// counterMu protects the namespace counter
	counterMu sync.Mutex
	counter   int64
)

// schema defines the tables the API relies on. A unique index backs the
// one-account-per-email rule; jobs are schemaless documents linked to
// their creating user.
var schema = []string{
	`DEFINE TABLE user SCHEMALESS`,
	`DEFINE INDEX unique_email ON TABLE user COLUMNS email UNIQUE`,
	`DEFINE TABLE job SCHEMALESS`,
}

// getTestConfig returns database config from environment or defaults
func getTestConfig() database.Config {
	host := os.Getenv("TEST_DB_HOST")

	port := os.Getenv("TEST_DB_PORT")
	if port == "" {
		port = "8000"
	}

	user := os.Getenv("TEST_DB_USER")
	if user == "" {
		user = "root"
	}

	password := os.Getenv("TEST_DB_PASSWORD")
	if password == "" {
		password = "root"
	}

	return database.Config{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// uniqueNamespace generates a unique namespace for test isolation
func uniqueNamespace() string {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter)
}

// New creates a new isolated test database with the schema applied.
// The database uses a unique namespace to ensure test isolation.
// Call Close() when done to clean up the namespace.
//
// Tests calling New are skipped when TEST_DB_HOST is not set.
func New(t *testing.T) *TestDB {
	t.Helper()

	cfg := getTestConfig()
	if cfg.Host == "" {
		t.Skip("set TEST_DB_HOST to run database integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	namespace := uniqueNamespace()
	dbName := "test"

	cfg.Namespace = namespace
	cfg.Database = dbName

	// Create database connection
	db := database.NewSurrealDB(cfg)
	if err := db.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}

	tdb := &TestDB{
		DB:        db,
		Namespace: namespace,
		Database:  dbName,
		t:         t,
	}

	for i, stmt := range schema {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			_ = db.Close()
			t.Fatalf("testdb: schema statement %d failed: %v", i+1, err)
		}
	}

	return tdb
}

// Close cleans up the test database by removing the namespace.
func (tdb *TestDB) Close() {
	if tdb.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Remove the test namespace to clean up
	query := fmt.Sprintf("REMOVE NAMESPACE %s", tdb.Namespace)
	_ = tdb.DB.Execute(ctx, query, nil) // Ignore errors on cleanup

	_ = tdb.DB.Close()
}

// Reset clears all data from tables while preserving schema.
// This is faster than creating a new TestDB for tests that need fresh data.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, table := range []string{"job", "user"} {
		if err := tdb.DB.Execute(ctx, fmt.Sprintf("DELETE %s", table), nil); err != nil {
			t.Fatalf("testdb: failed to reset table %s: %v", table, err)
		}
	}
}
