package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovh/ovhdata-cli/internal/adapters/driven/storage/memory"
	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

var errRejected = fmt.Errorf("response error: 403: invalid credential: %w", domain.ErrNotAuthenticated)

func TestAuthService_Login_StoresValidCredentials(t *testing.T) {
	contexts := NewContextService(memory.NewConfigStore())
	api := &fakeAPI{details: &domain.CredentialDetails{Status: "validated"}}
	service := NewAuthService(contexts, api.factory())

	details, err := service.Login(context.Background(), testCreds)

	require.NoError(t, err)
	assert.Equal(t, "validated", details.Status)
	assert.Equal(t, "https://eu.api.ovh.com/1.0", api.endpoint)
	assert.Equal(t, testCreds, api.creds)
	stored, ok := contexts.Credentials()
	assert.True(t, ok)
	assert.Equal(t, testCreds, stored)
}

func TestAuthService_Login_RejectedCredentialsAreNotStored(t *testing.T) {
	contexts := NewContextService(memory.NewConfigStore())
	api := &fakeAPI{err: errRejected}
	service := NewAuthService(contexts, api.factory())

	_, err := service.Login(context.Background(), testCreds)

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	_, ok := contexts.Credentials()
	assert.False(t, ok)
}

func TestAuthService_Login_Incomplete(t *testing.T) {
	api := &fakeAPI{}
	service := NewAuthService(NewContextService(memory.NewConfigStore()), api.factory())

	_, err := service.Login(context.Background(), domain.Credentials{ApplicationKey: "ak", ConsumerKey: "ck"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, api.calls)
}

func TestAuthService_Current(t *testing.T) {
	contexts := NewContextService(memory.NewConfigStore())
	api := &fakeAPI{details: &domain.CredentialDetails{CredentialID: 42}}
	service := NewAuthService(contexts, api.factory())

	_, err := service.Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	require.NoError(t, contexts.SaveCredentials(testCreds))
	details, err := service.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), details.CredentialID)

	api.err = errRejected
	_, err = service.Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	api.err = errors.New("connection refused")
	_, err = service.Current(context.Background())
	assert.NotErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestAuthService_Logout(t *testing.T) {
	contexts := NewContextService(memory.NewConfigStore())
	require.NoError(t, contexts.SaveCredentials(testCreds))
	service := NewAuthService(contexts, (&fakeAPI{}).factory())

	require.NoError(t, service.Logout())

	_, ok := contexts.Credentials()
	assert.False(t, ok)
}

func TestAccountService(t *testing.T) {
	contexts := NewContextService(memory.NewConfigStore())
	user := "ab12345-ovh"
	api := &fakeAPI{
		me:       &domain.Me{User: &user, Roles: []string{"ADMIN"}},
		projects: []domain.Project{{ProjectID: "p1", Description: "first"}},
	}
	service := NewAccountService(contexts, api.factory())

	_, err := service.Me(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	require.NoError(t, contexts.SaveCredentials(testCreds))
	me, err := service.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user, *me.User)

	projects, err := service.Projects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, api.projects, projects)
}

func TestAccountService_NilFactory(t *testing.T) {
	contexts := NewContextService(memory.NewConfigStore())
	require.NoError(t, contexts.SaveCredentials(testCreds))

	_, err := NewAccountService(contexts, nil).Projects(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}
