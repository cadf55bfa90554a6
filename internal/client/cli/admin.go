package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/krishiu/krishi-cli/internal/client/api"
	"github.com/krishiu/krishi-cli/internal/client/models"
)

// withAuthRetry runs fn and, if it fails with an unauthorized status,
// refreshes the session's access token once and runs fn again. Any other
// error, and any error from the retry itself, is returned as-is.
func (a *App) withAuthRetry(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil || !api.IsUnauthorized(err) {
		return err
	}
	if a.sess == nil || a.sess.RefreshToken == "" {
		return err
	}
	if rerr := a.auth.Refresh(ctx, a.sess); rerr != nil {
		return err
	}
	return fn()
}

// Dashboard prints the aggregate statistics view.
func (a *App) Dashboard(ctx context.Context) error {
	var stats *models.DashboardStats
	err := a.withAuthRetry(ctx, func() error {
		var err error
		stats, err = a.dashboard.Stats(ctx, a.sess)
		return err
	})
	if err != nil {
		log.Printf("cannot load dashboard: %s", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Farmers: %d  Landlords: %d  Spaces: %d  Connections: %d  Acres: %g",
		stats.TotalFarmers, stats.TotalLandlords, stats.TotalSpaces, stats.TotalConnections, stats.TotalAcres))
	return nil
}

// Collaborations lists the farmer–landlord pairings.
func (a *App) Collaborations(ctx context.Context) error {
	var collabs []models.Collaboration
	err := a.withAuthRetry(ctx, func() error {
		var err error
		collabs, err = a.dashboard.Collaborations(ctx, a.sess)
		return err
	})
	if err != nil {
		log.Printf("cannot load collaborations: %s", err.Error())
		return err
	}

	if len(collabs) == 0 {
		printlnFn("No collaborations")
		return nil
	}
	for _, c := range collabs {
		printlnFn(fmt.Sprintf("%s + %s: %s (%s)", c.Farmer, c.Landlord, c.Crop, c.Status))
	}
	return nil
}

// Farmers lists every farmer profile.
func (a *App) Farmers(ctx context.Context) error {
	var farmers []models.FarmerProfile
	err := a.withAuthRetry(ctx, func() error {
		var err error
		farmers, err = a.dashboard.Farmers(ctx, a.sess)
		return err
	})
	if err != nil {
		log.Printf("cannot load farmers: %s", err.Error())
		return err
	}

	for _, f := range farmers {
		printlnFn(fmt.Sprintf("#%d user %d phone %s", f.ID, f.UserID, f.PhoneNumber))
	}
	return nil
}

// Landlords lists every landlord profile.
func (a *App) Landlords(ctx context.Context) error {
	var landlords []models.LandlordProfile
	err := a.withAuthRetry(ctx, func() error {
		var err error
		landlords, err = a.dashboard.Landlords(ctx, a.sess)
		return err
	})
	if err != nil {
		log.Printf("cannot load landlords: %s", err.Error())
		return err
	}

	for _, l := range landlords {
		printlnFn(fmt.Sprintf("#%d user %d %s, %g acres at %s", l.ID, l.UserID, l.LandType, l.Acres, l.Location))
	}
	return nil
}
