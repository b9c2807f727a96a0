// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"opinator/config"
	domainerrors "opinator/internal/domain/errors"
	"opinator/internal/domain/service"
	"opinator/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string // Shared HMAC secret the gateway signs tokens with.
	issuer string // Expected issuer claim; empty disables the check.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.JWT.Secret,
		issuer: cfg.JWT.Issuer,
	}, nil
}

// ValidateToken checks the token signature and expiry and returns its claims.
func (s *jwtService) ValidateToken(_ context.Context, tokenString string) (*service.TokenClaims, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, parserOpts...)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails(err.Error())
	}

	subject, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if email == "" {
		// The gateway puts the address in the subject claim when no
		// dedicated email claim is present.
		email = subject
	}
	if email == "" {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("token carries no email claim")
	}

	return &service.TokenClaims{
		Subject: subject,
		Email:   email,
	}, nil
}
