package services

import (
	"context"
	"fmt"

	"github.com/krishiu/krishi-cli/internal/client/api"
	"github.com/krishiu/krishi-cli/internal/client/models"
	"github.com/krishiu/krishi-cli/internal/client/session"
	"github.com/krishiu/krishi-cli/internal/logging"
)

// Resolution is the outcome of a profile lookup. Registered false means the
// account has no role-specific profile yet; it is never used to paper over a
// failed lookup.
type Resolution struct {
	Registered bool
	Farmer     *models.FarmerProfile
	Landlord   *models.LandlordProfile
}

// ResolverService determines whether a role-specific profile already exists
// for the session's account. It is read-only, safe to call repeatedly, and
// invoked on every dashboard activation so client state stays authoritative;
// nothing is cached between calls.
type ResolverService interface {
	Resolve(ctx context.Context, sess *session.Session) (*Resolution, error)
}

type resolverService struct {
	client api.Client
	log    logging.Logger
}

func NewResolverService(client api.Client, log logging.Logger) ResolverService {
	return &resolverService{client: client, log: log}
}

// Resolve distinguishes "absent" from "error" per role.
//
// Farmers have a point-lookup endpoint; a 404 there means absent and any
// other non-2xx is a resolution failure. Landlords do not: the only read the
// service offers is the full collection, so resolution fetches it and scans
// for the session's account id. That asymmetry belongs to the service
// contract and is kept as-is.
func (r *resolverService) Resolve(ctx context.Context, sess *session.Session) (*Resolution, error) {
	switch sess.Role {
	case models.RoleFarmer:
		profile, err := r.client.GetFarmer(ctx, sess.AccessToken, sess.UserID)
		if err != nil {
			if api.IsNotFound(err) {
				return &Resolution{}, nil
			}
			// Both sentinels stay matchable: ErrResolution for callers
			// branching on the lookup outcome, the transport error for the
			// refresh-on-401 retry at the app boundary.
			return nil, fmt.Errorf("%w: %w", ErrResolution, err)
		}
		return &Resolution{Registered: true, Farmer: profile}, nil

	case models.RoleLandlord:
		landlords, err := r.client.ListLandlords(ctx, sess.AccessToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrResolution, err)
		}
		for i := range landlords {
			if landlords[i].UserID == sess.UserID {
				return &Resolution{Registered: true, Landlord: &landlords[i]}, nil
			}
		}
		return &Resolution{}, nil

	default:
		return nil, fmt.Errorf("%w: no profile kind for role %q", ErrResolution, sess.Role)
	}
}
