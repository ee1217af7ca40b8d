// Package common defines shared constants and sentinel errors used across
// the layers of the weatherhub server. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Auth errors.
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorNoToken            = errors.New("no token provided")
	ErrorInvalidToken       = errors.New("invalid token")

	// Upstream weather provider errors.
	ErrorUpstream = errors.New("upstream error")
)
