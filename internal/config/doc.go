// Package config manages application configuration for the job board API.
//
// The config package loads and validates configuration from environment
// variables, with a local .env file honored in development via godotenv.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded once at startup and validated before the server
// accepts traffic:
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    // fatal: refuse to start
//	}
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: token signing settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT         - HTTP server port (default: 8080)
//	DB_HOST / DB_PORT   - SurrealDB endpoint
//	DB_USER / DB_PASSWORD
//	DB_NAMESPACE / DB_DATABASE
//	JWT_SECRET          - token signing secret (required, no default)
//	JWT_EXPIRATION_MINS - token lifetime in minutes (default: 1440)
//	JWT_ISSUER          - token issuer claim
//
// JWT_SECRET has deliberately no default value: the process refuses to
// start without one rather than sign tokens with a known secret.
package config
