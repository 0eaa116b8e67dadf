package services

import (
	"testing"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.CreateUser("librarian", "secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", user.Password)

	_, err = svc.CreateUser("", "secret")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestAuthenticateUser(t *testing.T) {
	middleware.SetSecretKey("test-secret")
	svc := NewUserService(newTestDB(t))

	_, err := svc.CreateUser("librarian", "secret")
	require.NoError(t, err)

	token, err := svc.AuthenticateUser("librarian", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.AuthenticateUser("librarian", "wrong")
	assert.Error(t, err)

	_, err = svc.AuthenticateUser("nobody", "secret")
	assert.Error(t, err)
}
