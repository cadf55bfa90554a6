package services

import (
	"context"
	"fmt"

	"github.com/krishiu/krishi-cli/internal/client/api"
	"github.com/krishiu/krishi-cli/internal/client/session"
	"github.com/krishiu/krishi-cli/internal/common"
	"github.com/krishiu/krishi-cli/internal/logging"
)

// AuthService is the authentication gate.
//
// Contract:
//   - Login: exchange credentials for a session. An empty access token in a
//     2xx response is treated as invalid credentials; HTTP status alone is
//     not trusted. A role the client cannot route returns the populated
//     session together with common.ErrUnexpectedRole, so the caller can
//     surface the condition without dropping the authenticated state.
//   - Refresh: swap the session's access token for a fresh one.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Refresh(ctx context.Context, sess *session.Session) error
}

type authService struct {
	client api.Client
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client api.Client, log logging.Logger) AuthService {
	return &authService{client: client, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if res.AccessToken == "" {
		return nil, common.ErrInvalidCredentials
	}

	sess := &session.Session{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		UserID:       res.User.ID,
		Email:        res.User.Email,
		Role:         res.User.Role,
	}

	if !res.User.Role.Known() {
		a.log.Warn(ctx, "login returned unroutable role", "role", res.User.Role)
		return sess, common.ErrUnexpectedRole
	}

	return sess, nil
}

func (a *authService) Refresh(ctx context.Context, sess *session.Session) error {
	token, err := a.client.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		return fmt.Errorf("token refresh error: %w", err)
	}
	if token == "" {
		return common.ErrInvalidCredentials
	}
	sess.AccessToken = token
	return nil
}
