package handler

import (
	"log/slog"
	"net/http"

	"github.com/openhire/jobboard/internal/model"
	"github.com/openhire/jobboard/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRequest represents the register endpoint request body
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest represents the login endpoint request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.UserRole(req.Role),
	})
	if err != nil {
		h.writeAuthError(w, r, err, "registration failed")
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    toUserResponse(result.User),
		"token":   result.Token,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeAuthError(w, r, err, "login failed")
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    toUserResponse(result.User),
		"token":   result.Token,
	})
}

func (h *AuthHandler) writeAuthError(w http.ResponseWriter, r *http.Request, err error, op string) {
	apiErr := MapServiceError(err)
	if apiErr.Status >= http.StatusInternalServerError {
		slog.Error(op,
			slog.Any("error", err),
			slog.String("path", r.URL.Path),
		)
	}
	WriteError(w, apiErr)
}
