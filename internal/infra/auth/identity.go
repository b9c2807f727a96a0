package auth

import (
	"context"

	domainerrors "opinator/internal/domain/errors"
	"opinator/internal/domain/service"
)

type identityContextKey struct{}

// WithSubject returns a context carrying the verified caller email. The HTTP
// auth middleware calls this after validating the bearer token.
func WithSubject(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, identityContextKey{}, email)
}

// SubjectFromContext extracts the verified caller email, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(identityContextKey{}).(string)

	return email, ok && email != ""
}

// contextIdentitySource resolves the caller identity from the request context.
type contextIdentitySource struct{}

// NewContextIdentitySource builds the IdentitySource backed by request-context
// values set by the auth middleware.
func NewContextIdentitySource() service.IdentitySource {
	return &contextIdentitySource{}
}

// CurrentSubject returns the authenticated caller's email.
func (s *contextIdentitySource) CurrentSubject(ctx context.Context) (string, error) {
	email, ok := SubjectFromContext(ctx)
	if !ok {
		return "", domainerrors.ErrUnauthenticated
	}

	return email, nil
}
