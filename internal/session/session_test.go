package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/api"
	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/session"
)

type mockAuthAPI struct {
	loginFunc      func(ctx context.Context, creds api.Credentials) error
	registerFunc   func(ctx context.Context, creds api.Credentials) error
	refetchFunc    func(ctx context.Context) (*api.User, error)
	logoutFunc     func(ctx context.Context) error
	staffLoginFunc func(ctx context.Context, creds api.Credentials) (*api.User, error)
}

func (m *mockAuthAPI) Login(ctx context.Context, creds api.Credentials) error {
	return m.loginFunc(ctx, creds)
}

func (m *mockAuthAPI) Register(ctx context.Context, creds api.Credentials) error {
	return m.registerFunc(ctx, creds)
}

func (m *mockAuthAPI) RefetchUser(ctx context.Context) (*api.User, error) {
	return m.refetchFunc(ctx)
}

func (m *mockAuthAPI) Logout(ctx context.Context) error {
	return m.logoutFunc(ctx)
}

func (m *mockAuthAPI) StaffLogin(ctx context.Context, creds api.Credentials) (*api.User, error) {
	return m.staffLoginFunc(ctx, creds)
}

func TestStore_SignIn_ValidationBlocksBeforeNetwork(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "not_an_email", email: "not-an-email", password: "password123"},
		{name: "empty_email", email: "", password: "password123"},
		{name: "empty_password", email: "user@example.com", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mockAPI := &mockAuthAPI{
				loginFunc: func(ctx context.Context, creds api.Credentials) error {
					called = true
					return nil
				},
			}

			store := session.NewStore(mockAPI)
			_, err := store.SignIn(context.Background(), tt.email, tt.password)

			assert.Error(t, err)
			assert.False(t, called, "login must not be called for invalid credentials")
		})
	}
}

func TestStore_SignIn_Success(t *testing.T) {
	var loginCreds api.Credentials
	mockAPI := &mockAuthAPI{
		loginFunc: func(ctx context.Context, creds api.Credentials) error {
			loginCreds = creds
			return nil
		},
		refetchFunc: func(ctx context.Context) (*api.User, error) {
			return &api.User{ID: "u-1", Email: "user@example.com"}, nil
		},
	}

	store := session.NewStore(mockAPI)
	user, err := store.SignIn(context.Background(), "user@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "user@example.com", loginCreds.Email)
	assert.Equal(t, "user@example.com", user.Email)
	assert.False(t, user.IsStaff)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "u-1", current.ID)
}

func TestStore_SignUp_ShortPasswordBlocksBeforeNetwork(t *testing.T) {
	called := false
	mockAPI := &mockAuthAPI{
		registerFunc: func(ctx context.Context, creds api.Credentials) error {
			called = true
			return nil
		},
	}

	store := session.NewStore(mockAPI)
	err := store.SignUp(context.Background(), "user@example.com", "short")

	assert.Error(t, err)
	assert.False(t, called)
}

func TestStore_Refetch_FailureClearsUser(t *testing.T) {
	calls := 0
	mockAPI := &mockAuthAPI{
		refetchFunc: func(ctx context.Context) (*api.User, error) {
			calls++
			if calls == 1 {
				return &api.User{ID: "u-1", Email: "user@example.com"}, nil
			}
			return nil, errors.New("cookie expired")
		},
	}

	store := session.NewStore(mockAPI)

	_, err := store.Refetch(context.Background())
	require.NoError(t, err)
	_, ok := store.Current()
	require.True(t, ok)

	_, err = store.Refetch(context.Background())
	assert.ErrorIs(t, err, session.ErrNotSignedIn)

	_, ok = store.Current()
	assert.False(t, ok)
}

func TestStore_StaffSignIn_MarksSessionAsStaff(t *testing.T) {
	mockAPI := &mockAuthAPI{
		staffLoginFunc: func(ctx context.Context, creds api.Credentials) (*api.User, error) {
			return &api.User{ID: "s-1", Email: creds.Email, IsStaff: true}, nil
		},
	}

	store := session.NewStore(mockAPI)
	user, err := store.StaffSignIn(context.Background(), "staff@example.com", "staff-password")

	require.NoError(t, err)
	assert.True(t, user.IsStaff)

	current, ok := store.Current()
	require.True(t, ok)
	assert.True(t, current.IsStaff)
}

func TestStore_SignOut_ClearsUserEvenWhenLogoutFails(t *testing.T) {
	mockAPI := &mockAuthAPI{
		refetchFunc: func(ctx context.Context) (*api.User, error) {
			return &api.User{ID: "u-1", Email: "user@example.com"}, nil
		},
		logoutFunc: func(ctx context.Context) error {
			return errors.New("network down")
		},
	}

	store := session.NewStore(mockAPI)
	_, err := store.Refetch(context.Background())
	require.NoError(t, err)

	store.SignOut(context.Background())

	_, ok := store.Current()
	assert.False(t, ok)
}
