package service

import (
	"context"
	"strings"

	"github.com/openhire/jobboard/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	// Password constraints
	minPasswordLength = 6
	maxPasswordLength = 128
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// TokenIssuer issues signed identity tokens for authenticated users
type TokenIssuer interface {
	Issue(subjectID, role string) (string, error)
}

// AuthService handles registration and login
type AuthService struct {
	userRepo UserRepository
	tokens   TokenIssuer
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo UserRepository
	Tokens   TokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo: cfg.UserRepo,
		tokens:   cfg.Tokens,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Role     model.UserRole
}

// AuthResult represents a successful registration or login
type AuthResult struct {
	User  *model.User
	Token string
}

// Register creates a new user account and issues an identity token.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	fields := make([]model.FieldError, 0, 3)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		fields = append(fields, model.FieldError{Field: "name", Message: "name is required"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !isValidEmail(email) {
		fields = append(fields, model.FieldError{Field: "email", Message: "a valid email is required"})
	}

	if len(req.Password) < minPasswordLength || len(req.Password) > maxPasswordLength {
		fields = append(fields, model.FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	role := req.Role
	if role == "" {
		role = model.UserRoleJobseeker
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:  name,
		Email: email,
		Hash:  hash,
		Role:  role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tok, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: tok}, nil
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string
	Password string
}

// Login authenticates a user with email/password and issues a token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !checkPassword(req.Password, user.Hash) {
		return nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: tok}, nil
}

// Helper functions

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func isValidEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	atIndex := strings.Index(email, "@")
	if atIndex < 1 {
		return false
	}
	dotIndex := strings.LastIndex(email, ".")
	if dotIndex < atIndex+2 {
		return false
	}
	if dotIndex >= len(email)-1 {
		return false
	}
	return true
}
