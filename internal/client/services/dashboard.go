package services

import (
	"context"

	"github.com/krishiu/krishi-cli/internal/client/api"
	"github.com/krishiu/krishi-cli/internal/client/models"
	"github.com/krishiu/krishi-cli/internal/client/session"
)

// DashboardService covers the read-only views: aggregate statistics and the
// admin listings, plus the collaboration list.
type DashboardService interface {
	Stats(ctx context.Context, sess *session.Session) (*models.DashboardStats, error)
	Collaborations(ctx context.Context, sess *session.Session) ([]models.Collaboration, error)
	Farmers(ctx context.Context, sess *session.Session) ([]models.FarmerProfile, error)
	Landlords(ctx context.Context, sess *session.Session) ([]models.LandlordProfile, error)
}

type dashboardService struct {
	client api.Client
}

func NewDashboardService(client api.Client) DashboardService {
	return &dashboardService{client: client}
}

func (s *dashboardService) Stats(ctx context.Context, sess *session.Session) (*models.DashboardStats, error) {
	return s.client.DashboardStats(ctx, sess.AccessToken)
}

func (s *dashboardService) Collaborations(ctx context.Context, sess *session.Session) ([]models.Collaboration, error) {
	return s.client.ListCollaborations(ctx, sess.AccessToken)
}

func (s *dashboardService) Farmers(ctx context.Context, sess *session.Session) ([]models.FarmerProfile, error) {
	return s.client.ListFarmers(ctx, sess.AccessToken)
}

func (s *dashboardService) Landlords(ctx context.Context, sess *session.Session) ([]models.LandlordProfile, error) {
	return s.client.ListLandlords(ctx, sess.AccessToken)
}
