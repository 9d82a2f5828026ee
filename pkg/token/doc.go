// Package token provides the identity token codec for the job board API.
//
// Tokens are HMAC-signed JWTs carrying a single identity claim: the
// subject's user ID and role. They are stateless: nothing is persisted
// server-side, so a role change or account deletion does not invalidate
// already-issued tokens until they expire.
//
// # Issuing
//
//	codec, err := token.NewCodec(token.Config{
//	    Secret: cfg.JWT.Secret,
//	    Issuer: "jobboard",
//	    TTL:    24 * time.Hour,
//	})
//
//	tok, err := codec.Issue(user.ID, string(user.Role))
//
// # Verifying
//
//	claims, err := codec.Verify(tok)
//	if err != nil {
//	    // token.ErrTokenExpired or token.ErrTokenInvalid
//	}
//	userID := claims.UserID()
package token
