package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/store"
)

func newService() (*Service, *store.Service) {
	st := store.NewService(store.NewMemory())
	return NewService(st), st
}

func TestRegisterAndLogin(t *testing.T) {
	svc, st := newService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada@Example.com", "hunter2", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada", user.Name)
	assert.NotEmpty(t, user.ID)

	// Registering does not sign in.
	current, err := st.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	got, err := svc.Login(ctx, "ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	current, err = st.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada@example.com", "hunter2", "Ada")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ADA@example.com", "other", "Someone Else")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "hunter2", "Ada")
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Register(ctx, "ada@example.com", "", "Ada")
	assert.True(t, domain.IsValidation(err))
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	svc, st := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada@example.com", "hunter2", "Ada")
	require.NoError(t, err)

	accounts, err := st.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.NotContains(t, accounts[0].PasswordHash, "hunter2")
	assert.NotEmpty(t, accounts[0].PasswordHash)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, st := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada@example.com", "hunter2", "Ada")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	current, err := st.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, current, "failed login must not sign anyone in")
}

func TestLogoutClearsUserAndSync(t *testing.T) {
	svc, st := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada@example.com", "hunter2", "Ada")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "ada@example.com", "hunter2")
	require.NoError(t, err)
	require.NoError(t, st.SetSyncEnabled(ctx, true))

	require.NoError(t, svc.Logout(ctx))

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	enabled, err := st.SyncEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}
