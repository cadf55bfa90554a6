// Package common defines shared sentinel errors used across the client
// layers of KrishiConnect. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth gate errors.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnexpectedRole is returned when the service reports a role the
	// client does not know how to route. The session is still authenticated.
	ErrUnexpectedRole = errors.New("unexpected role")
)
