// Package common defines shared constants and sentinel errors used across
// Permalist layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Request gate errors (missing or unusable Authorization header).
	ErrNoToken           = errors.New("no token provided")
	ErrInvalidAuthHeader = errors.New("invalid authorization header")

	// Token lifecycle errors.
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidToken   = errors.New("invalid token")
)
