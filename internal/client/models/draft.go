package models

import (
	"strings"

	"github.com/google/uuid"
)

// RegistrationDraft is the in-progress form state for one registration
// attempt. It is owned by the registration service for the duration of the
// attempt and discarded on success or abandonment, never partially persisted.
//
// Numeric form fields stay strings here: they hold whatever the user typed
// and are parsed at validation time.
type RegistrationDraft struct {
	ID       string
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
	Role     Role   `form:"role" validate:"required,oneof=admin farmer landlord"`

	// Required for farmer and landlord.
	PhoneNumber string `form:"phone_number" validate:"required_unless=Role admin"`

	// Farmer fields.
	LandHandlingCapacity string `form:"land_handling_capacity" validate:"required_if=Role farmer"`
	PreferredLocations   string `form:"preferred_locations" validate:"required_if=Role farmer"`

	// Landlord fields.
	SoilType string `form:"soil_type" validate:"required_if=Role landlord"`
	Acres    string `form:"acres" validate:"required_if=Role landlord"`
	Location string `form:"location" validate:"required_if=Role landlord"`

	// Locally selected files, uploaded before profile creation.
	Files []Attachment `validate:"-"`
}

// NewRegistrationDraft returns an empty draft with a unique identity. The ID
// keys the single-flight guard against duplicate submission.
func NewRegistrationDraft() *RegistrationDraft {
	return &RegistrationDraft{ID: uuid.NewString()}
}

// SplitLocations splits the comma-separated preferred locations into an
// ordered list, trimming whitespace around each segment. Empty segments pass
// through as given.
func (d *RegistrationDraft) SplitLocations() []string {
	parts := strings.Split(d.PreferredLocations, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}
