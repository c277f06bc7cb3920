package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("Invalid or expired token")

// Claims carries what the API needs from a verified token: the external
// auth id. Everything else the provider issues is opaque to this system.
type Claims struct {
	ExternalID string
}

// TokenVerifier checks an incoming bearer token against the external
// identity provider and extracts its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}
