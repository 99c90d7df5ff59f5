// Package common defines shared constants and sentinel errors used across
// the CatalogKeeper server, its repositories and its HTTP layer. Callers
// should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Account errors.
	ErrorInvalidPassword = errors.New("invalid password")
	ErrInvalidToken      = errors.New("invalid token")
)
