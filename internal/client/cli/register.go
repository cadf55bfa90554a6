package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/krishiu/krishi-cli/internal/client/models"
	"github.com/krishiu/krishi-cli/internal/client/services"
)

// Register collects a registration form interactively and submits it.
//
// The role is asked first; it decides which profile fields are collected.
// Landlords may attach image files by path, loaded from disk before
// submission. Validation failures are printed per field and abort the
// attempt without any server call. A partial failure (account created but
// profile or images not) is reported as such so the user knows the account
// exists.
func (a *App) Register(ctx context.Context) error {
	draft := models.NewRegistrationDraft()

	role, err := getSimpleText(a.reader, "Enter role (admin/farmer/landlord)", os.Stdout)
	if err != nil {
		return err
	}
	draft.Role = models.Role(role)

	draft.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	draft.Password = string(password)

	switch draft.Role {
	case models.RoleFarmer, models.RoleLandlord:
		draft.PhoneNumber, err = getSimpleText(a.reader, "Enter phone number", os.Stdout)
		if err != nil {
			return err
		}
	}

	switch draft.Role {
	case models.RoleFarmer:
		draft.LandHandlingCapacity, err = getSimpleText(a.reader, "Enter land handling capacity (acres)", os.Stdout)
		if err != nil {
			return err
		}
		draft.PreferredLocations, err = getSimpleText(a.reader, "Enter preferred locations (comma-separated)", os.Stdout)
		if err != nil {
			return err
		}

	case models.RoleLandlord:
		draft.SoilType, err = getSimpleText(a.reader, "Enter soil type", os.Stdout)
		if err != nil {
			return err
		}
		draft.Acres, err = getSimpleText(a.reader, "Enter acres", os.Stdout)
		if err != nil {
			return err
		}
		draft.Location, err = getSimpleText(a.reader, "Enter location", os.Stdout)
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
				draft.Files = append(draft.Files, att)
			}
		}
	}

	if err := a.reg.Validate(draft); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			printlnFn("Please fix the following and try again:")
			printlnFn(verr.Error())
			return nil
		}
		return err
	}

	id, err := a.reg.Submit(ctx, draft)
	if err != nil {
		var rerr *services.RegistrationError
		if errors.As(err, &rerr) && rerr.Partial {
			log.Printf("%s; the account exists, log in to finish your profile", rerr.Message)
			return err
		}
		log.Printf("Registration failed: %s", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Success! Account %d created", id))
	return nil
}
