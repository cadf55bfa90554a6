package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishiu/krishi-cli/internal/client/api"
	"github.com/krishiu/krishi-cli/internal/client/models"
	"github.com/krishiu/krishi-cli/internal/client/session"
	"github.com/krishiu/krishi-cli/internal/common"
)

func TestAuthService_Login_Success(t *testing.T) {
	f := &fakeClient{
		loginRet: &api.LoginResult{
			AccessToken:  "tok",
			RefreshToken: "ref",
			User:         models.User{ID: 7, Email: "a@x.com", Role: models.RoleFarmer},
		},
	}
	svc := NewAuthService(f, testLogger())

	sess, err := svc.Login(context.Background(), "a@x.com", "p")
	require.NoError(t, err)
	assert.Equal(t, "tok", sess.AccessToken)
	assert.Equal(t, "ref", sess.RefreshToken)
	assert.Equal(t, 7, sess.UserID)
	assert.Equal(t, models.RoleFarmer, sess.Role)
	assert.True(t, sess.Authenticated())
}

func TestAuthService_Login_MissingTokenIsInvalidCredentials(t *testing.T) {
	// A 2xx response without a token must not be trusted.
	f := &fakeClient{
		loginRet: &api.LoginResult{
			User: models.User{ID: 7, Email: "a@x.com", Role: models.RoleFarmer},
		},
	}
	svc := NewAuthService(f, testLogger())

	sess, err := svc.Login(context.Background(), "a@x.com", "p")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Nil(t, sess)
	assert.False(t, sess.Authenticated())
}

func TestAuthService_Login_UnexpectedRoleKeepsSession(t *testing.T) {
	f := &fakeClient{
		loginRet: &api.LoginResult{
			AccessToken: "tok",
			User:        models.User{ID: 7, Email: "a@x.com", Role: "superuser"},
		},
	}
	svc := NewAuthService(f, testLogger())

	sess, err := svc.Login(context.Background(), "a@x.com", "p")
	require.ErrorIs(t, err, common.ErrUnexpectedRole)
	require.NotNil(t, sess)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, models.Role("superuser"), sess.Role)
}

func TestAuthService_Login_TransportError(t *testing.T) {
	f := &fakeClient{loginErr: api.ErrUnavailable}
	svc := NewAuthService(f, testLogger())

	sess, err := svc.Login(context.Background(), "a@x.com", "p")
	require.ErrorIs(t, err, api.ErrUnavailable)
	assert.Nil(t, sess)
}

func TestAuthService_Refresh(t *testing.T) {
	f := &fakeClient{refreshRet: "fresh"}
	svc := NewAuthService(f, testLogger())

	sess := &session.Session{AccessToken: "old", RefreshToken: "ref"}
	require.NoError(t, svc.Refresh(context.Background(), sess))
	assert.Equal(t, "fresh", sess.AccessToken)
}

func TestAuthService_Refresh_Error(t *testing.T) {
	f := &fakeClient{refreshErr: errors.New("boom")}
	svc := NewAuthService(f, testLogger())

	sess := &session.Session{AccessToken: "old", RefreshToken: "ref"}
	require.Error(t, svc.Refresh(context.Background(), sess))
	assert.Equal(t, "old", sess.AccessToken)
}
