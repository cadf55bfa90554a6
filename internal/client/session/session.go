// Package session holds the authenticated state of one browsing session.
package session

import "github.com/krishiu/krishi-cli/internal/client/models"

// Session carries the bearer credential and the authenticated user's
// identity and role. It is written once by the auth gate at login and passed
// explicitly to every authorized call; the only process-wide holder lives in
// the CLI app. Nothing is persisted beyond the process.
type Session struct {
	AccessToken  string
	RefreshToken string
	UserID       int
	Email        string
	Role         models.Role
}

// Authenticated reports whether the session carries a bearer token.
func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != ""
}
