package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openhire/jobboard/internal/config"
	"github.com/openhire/jobboard/internal/database"
	"github.com/openhire/jobboard/internal/handler"
	"github.com/openhire/jobboard/internal/jobs"
	"github.com/openhire/jobboard/internal/middleware"
	"github.com/openhire/jobboard/internal/model"
	"github.com/openhire/jobboard/internal/repository"
	"github.com/openhire/jobboard/internal/service"
	"github.com/openhire/jobboard/pkg/token"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration. A missing signing secret or database setting
	// is fatal here, before the server accepts any traffic.
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Keep the websocket to the database warm
	keepalive := jobs.NewKeepalive(db, 0)
	keepalive.Start()
	defer keepalive.Stop()

	// Initialize token codec
	codec, err := token.NewCodec(token.Config{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		TTL:    cfg.TokenTTL(),
	})
	if err != nil {
		slog.Error("failed to initialize token codec", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo: userRepo,
		Tokens:   codec,
	})
	jobService := service.NewJobService(jobRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	healthHandler := handler.NewHealthHandler(db)

	// Identity gates
	auth := middleware.NewAuthenticator(codec)
	recruiterOnly := auth.RequireRole(string(model.UserRoleRecruiter))

	// Routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Auth endpoints (public)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Job endpoints
	mux.Handle("POST /api/jobs", recruiterOnly(http.HandlerFunc(jobHandler.Create)))
	mux.HandleFunc("GET /api/jobs", jobHandler.ListAll)
	mux.Handle("GET /api/jobs/my", recruiterOnly(http.HandlerFunc(jobHandler.ListMine)))
	mux.Handle("DELETE /api/jobs/{jobId}", recruiterOnly(http.HandlerFunc(jobHandler.Delete)))

	// Global middleware chain
	wrapped := middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
