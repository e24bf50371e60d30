package services

import "context"

// AuthSvc authenticates the back-office operator.
type AuthSvc interface {
	// Login checks the credentials and returns a signed access token.
	// Bad credentials yield apperrors.ErrUnauthorized.
	Login(ctx context.Context, username, password string) (string, error)
}
