package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestCodec(t *testing.T, ttl time.Duration) *Codec {
	t.Helper()
	codec, err := NewCodec(Config{
		Secret: "test-secret",
		Issuer: "jobboard-test",
		TTL:    ttl,
	})
	if err != nil {
		t.Fatalf("failed to create codec: %v", err)
	}
	return codec
}

// ============================================================================
// NewCodec Tests
// ============================================================================

func TestNewCodec_MissingSecret_ReturnsError(t *testing.T) {
	t.Parallel()
	_, err := NewCodec(Config{Issuer: "jobboard-test"})

	if !errors.Is(err, ErrMissingSecret) {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}
}

func TestNewCodec_ZeroTTL_DefaultsToOneDay(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t, 0)

	if codec.TTL() != 24*time.Hour {
		t.Errorf("expected default TTL of 24h, got %v", codec.TTL())
	}
}

// ============================================================================
// Issue/Verify Round-Trip Tests
// ============================================================================

func TestCodec_RoundTrip_ReturnsClaims(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t, time.Hour)

	cases := []struct {
		subjectID string
		role      string
	}{
		{"user:alice", "recruiter"},
		{"user:bob", "jobseeker"},
		{"user:f81d4fae-7dec", "recruiter"},
	}

	for _, tc := range cases {
		tok, err := codec.Issue(tc.subjectID, tc.role)
		if err != nil {
			t.Fatalf("Issue(%q, %q): %v", tc.subjectID, tc.role, err)
		}

		claims, err := codec.Verify(tok)
		if err != nil {
			t.Fatalf("Verify after Issue(%q, %q): %v", tc.subjectID, tc.role, err)
		}
		if claims.UserID() != tc.subjectID {
			t.Errorf("expected subject %q, got %q", tc.subjectID, claims.UserID())
		}
		if claims.Role != tc.role {
			t.Errorf("expected role %q, got %q", tc.role, claims.Role)
		}
	}
}

func TestCodec_Verify_ExpiredToken_ReturnsErrTokenExpired(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t, time.Hour)

	tok, err := codec.IssueWithTTL("user:alice", "recruiter", -time.Minute)
	if err != nil {
		t.Fatalf("IssueWithTTL: %v", err)
	}

	_, err = codec.Verify(tok)

	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestCodec_Verify_GarbledToken_ReturnsErrTokenInvalid(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t, time.Hour)

	for _, tok := range []string{
		"",
		"not-a-token",
		"a.b",
		"a.b.c.d",
	} {
		if _, err := codec.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Verify(%q): expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}

func TestCodec_Verify_TamperedPayload_ReturnsErrTokenInvalid(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t, time.Hour)

	tok, err := codec.Issue("user:alice", "jobseeker")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Swap the payload segment for another token's payload; the
	// signature no longer matches.
	other, err := codec.Issue("user:mallory", "recruiter")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	parts := strings.Split(tok, ".")
	otherParts := strings.Split(other, ".")
	tampered := parts[0] + "." + otherParts[1] + "." + parts[2]

	if _, err := codec.Verify(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestCodec_Verify_WrongSecret_ReturnsErrTokenInvalid(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t, time.Hour)

	otherCodec, err := NewCodec(Config{
		Secret: "different-secret",
		Issuer: "jobboard-test",
		TTL:    time.Hour,
	})
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	tok, err := otherCodec.Issue("user:alice", "recruiter")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := codec.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestCodec_Verify_WrongIssuer_ReturnsErrTokenInvalid(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t, time.Hour)

	otherIssuer, err := NewCodec(Config{
		Secret: "test-secret",
		Issuer: "someone-else",
		TTL:    time.Hour,
	})
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	tok, err := otherIssuer.Issue("user:alice", "recruiter")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := codec.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for wrong issuer, got %v", err)
	}
}
