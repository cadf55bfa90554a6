package models

// FarmerProfile is the role-specific record for a farmer account, at most one
// per account. Field sets differ by entry point: the registration flow fills
// phone_number, land_handling_capacity and preferred_locations; the dashboard
// flow fills acres and previous_experience. The service stores whichever set
// was sent.
type FarmerProfile struct {
	ID                   int      `json:"id"`
	UserID               int      `json:"user_id"`
	PhoneNumber          string   `json:"phone_number,omitempty"`
	Acres                float64  `json:"acres,omitempty"`
	PreviousExperience   string   `json:"previous_experience,omitempty"`
	LandHandlingCapacity float64  `json:"land_handling_capacity,omitempty"`
	PreferredLocations   []string `json:"preferred_locations,omitempty"`
}

// LandlordProfile is the role-specific record for a landlord account, at most
// one per account. The service stores the image references under images_list.
type LandlordProfile struct {
	ID       int      `json:"id"`
	UserID   int      `json:"user_id"`
	LandType string   `json:"land_type"`
	Acres    float64  `json:"acres"`
	Location string   `json:"location"`
	Images   []string `json:"images_list"`
}

// LandlordForm is the dashboard-path form for adding a landlord profile to an
// already-registered account. This entry point calls the land field
// "land type"; the registration screen calls the same concept "soil type".
// The divergence is the service's, not ours, and is kept as-is.
type LandlordForm struct {
	LandType string
	Acres    float64
	Location string
	Files    []Attachment
}
