// Package common defines shared constants and sentinel errors used across
// todokeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorAlreadyExists = errors.New("already exists")

	// Login errors. The two causes stay distinguishable so the API can
	// answer "Invalid email" vs "Wrong password".
	ErrorUnknownEmail  = errors.New("unknown email")
	ErrorWrongPassword = errors.New("wrong password")

	// Auth errors. Bad signature and expiry collapse into one value;
	// callers may not tell them apart.
	ErrorInvalidToken = errors.New("invalid or expired token")
)
