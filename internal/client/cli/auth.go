package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/krishiu/krishi-cli/internal/client/models"
	"github.com/krishiu/krishi-cli/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Login prompts the user for credentials and tries to authenticate.
//
// On success the session is stored on the App and, for farmers and
// landlords, the profile is resolved immediately so the user sees whether
// their registration is complete. Invalid credentials leave the App logged
// out. An authenticated account with a role this client cannot route keeps
// its session; the condition is reported and the user can still log out.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			log.Printf("Login unsuccessful: invalid credentials")
			return nil
		case errors.Is(err, common.ErrUnexpectedRole):
			a.sess = sess
			log.Printf("Logged in, but role %q is not supported by this client", sess.Role)
			return nil
		default:
			log.Printf("Login unsuccessful: %s", err.Error())
			return err
		}
	}

	a.sess = sess
	printlnFn("Logged in as", sess.Email)

	if sess.Role == models.RoleFarmer || sess.Role == models.RoleLandlord {
		return a.Status(ctx)
	}
	return nil
}

// Logout discards the in-memory session. Nothing is persisted client-side,
// so there is no server call to make.
func (a *App) Logout(ctx context.Context) error {
	a.sess = nil
	printlnFn("Logged out")
	return nil
}
