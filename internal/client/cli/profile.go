package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/krishiu/krishi-cli/internal/client/models"
	"github.com/krishiu/krishi-cli/internal/client/services"
)

// Status resolves the session's profile and reports whether it exists. A
// resolution failure is reported as an error, never as "not registered".
func (a *App) Status(ctx context.Context) error {
	res, err := a.resolve(ctx)
	if err != nil {
		log.Printf("cannot determine profile status: %s", err.Error())
		return err
	}

	if res.Registered {
		printlnFn("Profile registered")
	} else {
		printlnFn("No profile yet; use 'addprofile' to create one")
	}
	return nil
}

// Profile resolves and prints the session's profile details.
func (a *App) Profile(ctx context.Context) error {
	res, err := a.resolve(ctx)
	if err != nil {
		log.Printf("cannot load profile: %s", err.Error())
		return err
	}
	if !res.Registered {
		printlnFn("No profile yet; use 'addprofile' to create one")
		return nil
	}

	switch {
	case res.Farmer != nil:
		f := res.Farmer
		printlnFn(fmt.Sprintf("Farmer profile #%d", f.ID))
		if f.PhoneNumber != "" {
			printlnFn("  phone:", f.PhoneNumber)
		}
		if f.LandHandlingCapacity > 0 {
			printlnFn(fmt.Sprintf("  land handling capacity: %g acres", f.LandHandlingCapacity))
		}
		if len(f.PreferredLocations) > 0 {
			printlnFn("  preferred locations:", strings.Join(f.PreferredLocations, ", "))
		}
		if f.Acres > 0 {
			printlnFn(fmt.Sprintf("  acres: %g", f.Acres))
		}
		if f.PreviousExperience != "" {
			printlnFn("  previous experience:", f.PreviousExperience)
		}

	case res.Landlord != nil:
		l := res.Landlord
		printlnFn(fmt.Sprintf("Landlord profile #%d", l.ID))
		printlnFn("  land type:", l.LandType)
		printlnFn(fmt.Sprintf("  acres: %g", l.Acres))
		printlnFn("  location:", l.Location)
		for _, img := range l.Images {
			printlnFn("  image:", img)
		}
	}
	return nil
}

// AddProfile creates the role profile for an account that registered without
// one. It refuses to run when a profile already exists; the service has no
// dedup of its own, so the check here is the only guard against doubles.
func (a *App) AddProfile(ctx context.Context) error {
	res, err := a.resolve(ctx)
	if err != nil {
		log.Printf("cannot determine profile status: %s", err.Error())
		return err
	}
	if res.Registered {
		printlnFn("Profile already exists")
		return nil
	}

	switch a.role() {
	case models.RoleFarmer:
		return a.addFarmerProfile(ctx)
	case models.RoleLandlord:
		return a.addLandlordProfile(ctx)
	default:
		printlnFn("No profile kind for role", string(a.role()))
		return nil
	}
}

func (a *App) addFarmerProfile(ctx context.Context) error {
	acresStr, err := getSimpleText(a.reader, "Enter acres", os.Stdout)
	if err != nil {
		return err
	}
	acres, err := strconv.ParseFloat(acresStr, 64)
	if err != nil || acres <= 0 {
		printlnFn("Acres must be a positive number")
		return nil
	}

	experience, err := getMultiline(a.reader, "Describe your previous experience:", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.withAuthRetry(ctx, func() error {
		return a.reg.AddFarmerProfile(ctx, a.sess, acres, experience)
	}); err != nil {
		log.Printf("profile creation failed: %s", err.Error())
		return err
	}

	printlnFn("Profile created")
	return nil
}

func (a *App) addLandlordProfile(ctx context.Context) error {
	form := models.LandlordForm{}

	var err error
	form.LandType, err = getSimpleText(a.reader, "Enter land type", os.Stdout)
	if err != nil {
		return err
	}

	acresStr, err := getSimpleText(a.reader, "Enter acres", os.Stdout)
	if err != nil {
		return err
	}
	form.Acres, err = strconv.ParseFloat(acresStr, 64)
	if err != nil || form.Acres <= 0 {
		printlnFn("Acres must be a positive number")
		return nil
	}

	form.Location, err = getSimpleText(a.reader, "Enter location", os.Stdout)
	if err != nil {
		return err
	}

	paths, err := getSimpleText(a.reader, "Enter image file paths (comma-separated, empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	if paths != "" {
		for _, p := range strings.Split(paths, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			att, err := models.LoadAttachment(p)
			if err != nil {
				log.Printf("cannot read %s: %v", p, err)
				return err
			}
			form.Files = append(form.Files, att)
		}
	}

	if err := a.withAuthRetry(ctx, func() error {
		return a.reg.AddLandlordProfile(ctx, a.sess, form)
	}); err != nil {
		log.Printf("profile creation failed: %s", err.Error())
		return err
	}

	printlnFn("Profile created")
	return nil
}

func (a *App) resolve(ctx context.Context) (*services.Resolution, error) {
	var res *services.Resolution
	err := a.withAuthRetry(ctx, func() error {
		var err error
		res, err = a.resolver.Resolve(ctx, a.sess)
		return err
	})
	return res, err
}
