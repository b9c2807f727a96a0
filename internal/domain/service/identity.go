package service

import "context"

// IdentitySource resolves the authenticated caller of the current request.
// The HTTP auth middleware stores the verified token subject on the request
// context; services read it back through this interface so ownership checks
// stay independent of the transport.
type IdentitySource interface {
	// CurrentSubject returns the authenticated caller's email. It returns a
	// domain unauthenticated error when the context carries no identity.
	CurrentSubject(ctx context.Context) (string, error)
}
