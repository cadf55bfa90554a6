// Package models defines the account, profile, and form types exchanged with
// the KrishiConnect service.
package models

// Role is the account role assigned at registration. It never changes after
// the account is created.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleFarmer   Role = "farmer"
	RoleLandlord Role = "landlord"
)

// Known reports whether the role is one the client can route.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleFarmer, RoleLandlord:
		return true
	}
	return false
}

// User is the base authenticated identity returned by the login endpoint.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
