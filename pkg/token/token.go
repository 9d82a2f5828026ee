package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid covers malformed tokens, bad signatures, wrong
	// issuer/algorithm, and any other structural failure.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired indicates the token was valid but its TTL has elapsed.
	ErrTokenExpired = errors.New("token expired")

	// ErrMissingSecret indicates the codec was constructed without a signing
	// secret. The server treats this as a fatal startup condition.
	ErrMissingSecret = errors.New("signing secret is required")
)

// Claims is the identity claim carried inside a signed token:
// the subject's user ID and their role. Nothing else is trusted
// from the token at authorization time.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the token subject.
func (c *Claims) UserID() string {
	return c.Subject
}

// Codec signs and verifies identity tokens with a process-wide HMAC secret.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// Config holds codec configuration.
type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// NewCodec creates a token codec. An empty secret is a construction error;
// the system must never fall back to signing with a default secret.
func NewCodec(cfg Config) (*Codec, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    ttl,
	}, nil
}

// Issue produces an opaque bearer string encoding {subjectID, role},
// signed HS256 and expiring after the codec's TTL.
func (c *Codec) Issue(subjectID, role string) (string, error) {
	return c.IssueWithTTL(subjectID, role, c.ttl)
}

// IssueWithTTL is Issue with an explicit time-to-live.
func (c *Codec) IssueWithTTL(subjectID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks the signature, structure, issuer, and expiry of a token
// and returns the embedded claims.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// TTL returns the codec's token time-to-live.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
