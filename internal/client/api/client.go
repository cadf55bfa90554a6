package api

import (
	"context"

	"github.com/krishiu/krishi-cli/internal/client/models"
)

// LoginResult is the login endpoint's success payload. A 2xx response with an
// empty access token must not be trusted; the auth gate treats it as invalid
// credentials.
type LoginResult struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	User         models.User `json:"user"`
}

// RegisterResult is the account creation payload. A missing id is fatal to
// the registration attempt even when the call itself succeeded. Token, when
// present, is the freshly issued credential for the follow-up profile calls.
type RegisterResult struct {
	ID    int    `json:"id"`
	Token string `json:"token"`
}

// FarmerRegistration covers both farmer profile entry points. The
// registration flow sends phone_number, land_handling_capacity and
// preferred_locations; the dashboard flow sends acres and
// previous_experience. UserID is set only when the caller addresses a
// specific account (registration flow); the dashboard flow is keyed by the
// bearer token.
type FarmerRegistration struct {
	UserID               int      `json:"user_id,omitempty"`
	PhoneNumber          string   `json:"phone_number,omitempty"`
	LandHandlingCapacity float64  `json:"land_handling_capacity,omitempty"`
	PreferredLocations   []string `json:"preferred_locations,omitempty"`
	Acres                float64  `json:"acres,omitempty"`
	PreviousExperience   string   `json:"previous_experience,omitempty"`
}

// LandlordRegistration covers both landlord profile entry points. The
// registration screen names the land field soil_type, the dashboard names it
// land_type; the service-side inconsistency is preserved verbatim rather
// than unified here.
type LandlordRegistration struct {
	UserID      int      `json:"user_id,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	SoilType    string   `json:"soil_type,omitempty"`
	LandType    string   `json:"land_type,omitempty"`
	Acres       float64  `json:"acres"`
	Location    string   `json:"location"`
	Images      []string `json:"images"`
}

// Client is the transport boundary to the KrishiConnect service. Calls that
// need authorization take the bearer token explicitly; the registration flow
// must be able to use the freshly issued token rather than the session one.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	RegisterUser(ctx context.Context, email, password string, role models.Role) (*RegisterResult, error)
	UploadImages(ctx context.Context, token string, files []models.Attachment) ([]string, error)
	RegisterFarmer(ctx context.Context, token string, reg FarmerRegistration) error
	GetFarmer(ctx context.Context, token string, userID int) (*models.FarmerProfile, error)
	RegisterLandlord(ctx context.Context, token string, reg LandlordRegistration) error
	ListFarmers(ctx context.Context, token string) ([]models.FarmerProfile, error)
	ListLandlords(ctx context.Context, token string) ([]models.LandlordProfile, error)
	DashboardStats(ctx context.Context, token string) (*models.DashboardStats, error)
	ListCollaborations(ctx context.Context, token string) ([]models.Collaboration, error)
}
