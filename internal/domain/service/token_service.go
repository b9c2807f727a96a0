package service

import "context"

// TokenClaims holds the identity extracted from a verified access token.
type TokenClaims struct {
	Subject string
	Email   string
}

// TokenService verifies access tokens presented by callers.
type TokenService interface {
	// ValidateToken checks the token signature and expiry and returns its claims.
	ValidateToken(ctx context.Context, tokenString string) (*TokenClaims, error)
}
