package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/openhire/jobboard/pkg/token"
)

// mockVerifier returns canned claims keyed by token string.
type mockVerifier struct {
	claims map[string]*token.Claims
	errs   map[string]error
}

func (m *mockVerifier) Verify(tokenString string) (*token.Claims, error) {
	if err, ok := m.errs[tokenString]; ok {
		return nil, err
	}
	if c, ok := m.claims[tokenString]; ok {
		return c, nil
	}
	return nil, token.ErrTokenInvalid
}

func recruiterClaims(userID string) *token.Claims {
	return &token.Claims{
		Role:             "recruiter",
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
	}
}

func newTestAuthenticator() *Authenticator {
	return NewAuthenticator(&mockVerifier{
		claims: map[string]*token.Claims{
			"good-token": recruiterClaims("user:alice"),
			"seeker-token": {
				Role:             "jobseeker",
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user:carol"},
			},
		},
		errs: map[string]error{
			"expired-token": token.ErrTokenExpired,
		},
	})
}

func decodeFailure(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (body %q)", err, rr.Body.String())
	}
	if success, ok := body["success"].(bool); !ok || success {
		t.Errorf("expected success=false envelope, got %v", body)
	}
	return body
}

// ============================================================================
// Authenticate Tests
// ============================================================================

func TestAuthenticate_NoHeader_Returns401(t *testing.T) {
	t.Parallel()
	auth := newTestAuthenticator()

	handler := auth.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without credentials")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
	body := decodeFailure(t, rr)
	if body["message"] != "Access denied. No token provided." {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestAuthenticate_MalformedHeader_Returns401(t *testing.T) {
	t.Parallel()
	auth := newTestAuthenticator()

	cases := []string{
		"good-token",       // missing scheme
		"Basic good-token", // wrong scheme
	}

	for _, header := range cases {
		handler := auth.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("handler must not run for header %q", header)
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
		req.Header.Set("Authorization", header)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rr.Code)
		}
	}
}

func TestAuthenticate_InvalidToken_Returns401(t *testing.T) {
	t.Parallel()
	auth := newTestAuthenticator()

	handler := auth.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
	body := decodeFailure(t, rr)
	if body["message"] != "Invalid or expired token" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestAuthenticate_ExpiredToken_Returns401WithReason(t *testing.T) {
	t.Parallel()
	auth := newTestAuthenticator()

	handler := auth.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
	body := decodeFailure(t, rr)
	if body["error"] != "token expired" {
		t.Errorf("expected diagnostic reason in error field, got %v", body["error"])
	}
}

func TestAuthenticate_ValidToken_PopulatesContext(t *testing.T) {
	t.Parallel()
	auth := newTestAuthenticator()

	var gotID, gotRole string
	var gotClaims *token.Claims
	handler := auth.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetUserID(r.Context())
		gotRole = GetUserRole(r.Context())
		gotClaims = GetClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", rr.Code, rr.Body.String())
	}
	if gotID != "user:alice" {
		t.Errorf("expected user ID in context, got %q", gotID)
	}
	if gotRole != "recruiter" {
		t.Errorf("expected role in context, got %q", gotRole)
	}
	if gotClaims == nil || gotClaims.UserID() != "user:alice" {
		t.Errorf("expected claims in context, got %+v", gotClaims)
	}
}

func TestAuthenticate_CaseInsensitiveBearerScheme(t *testing.T) {
	t.Parallel()
	auth := newTestAuthenticator()

	handler := auth.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200 for lowercase scheme, got %d", rr.Code)
	}
}

// ============================================================================
// RequireRole Tests
// ============================================================================

func TestRequireRole_MatchingRole_Proceeds(t *testing.T) {
	t.Parallel()
	auth := newTestAuthenticator()

	handler := auth.RequireRole("recruiter")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d (body %s)", rr.Code, rr.Body.String())
	}
}

func TestRequireRole_WrongRole_Returns403NamingRole(t *testing.T) {
	t.Parallel()
	auth := newTestAuthenticator()

	handler := auth.RequireRole("recruiter")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for a jobseeker")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer seeker-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rr.Code)
	}
	body := decodeFailure(t, rr)
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "recruiter") {
		t.Errorf("403 message must name the required role, got %q", msg)
	}
}

func TestRequireRole_NoToken_Returns401(t *testing.T) {
	t.Parallel()
	auth := newTestAuthenticator()

	// The role gate carries its own authentication stage, so an
	// unauthenticated request is rejected 401 before any role check.
	handler := auth.RequireRole("recruiter")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without credentials")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestRequireRole_ExpiredToken_Returns401(t *testing.T) {
	t.Parallel()
	auth := newTestAuthenticator()

	handler := auth.RequireRole("recruiter")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

// ============================================================================
// Context Accessor Tests
// ============================================================================

func TestContextAccessors_Missing_ReturnZeroValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if got := GetUserID(ctx); got != "" {
		t.Errorf("expected empty user ID, got %q", got)
	}
	if got := GetUserRole(ctx); got != "" {
		t.Errorf("expected empty role, got %q", got)
	}
	if got := GetClaims(ctx); got != nil {
		t.Errorf("expected nil claims, got %+v", got)
	}
}

func TestContextAccessors_WrongType_ReturnZeroValues(t *testing.T) {
	t.Parallel()
	ctx := context.WithValue(context.Background(), UserIDKey, 42)
	ctx = context.WithValue(ctx, RoleKey, 42)

	if got := GetUserID(ctx); got != "" {
		t.Errorf("expected empty user ID, got %q", got)
	}
	if got := GetUserRole(ctx); got != "" {
		t.Errorf("expected empty role, got %q", got)
	}
}
