package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportcrm/dashboard-service/internal/config"
	"github.com/supportcrm/dashboard-service/internal/domain"
	"github.com/supportcrm/dashboard-service/internal/repository"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AdminEmail:    "admin@gmail.com",
		AdminPassword: "admin123",
		// MinCost keeps the per-test bcrypt hash cheap.
		BcryptCost: 4,
	}
}

func newTestService(t *testing.T) (*Service, *MemoryStore) {
	t.Helper()
	stores := repository.NewStores()
	require.NoError(t, repository.SeedDemoData(context.Background(), stores))
	store := NewMemoryStore()
	svc, err := NewService(store, stores.Users, testAuthConfig())
	require.NoError(t, err)
	return svc, store
}

func TestLogin_ValidCredentials(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	user, err := svc.Login(ctx, "admin@gmail.com", "admin123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, domain.UserRoleAdmin, user.Role)

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, user.ID, persisted.ID)
}

func TestLogin_EmailIsCaseInsensitiveAndTrimmed(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.Login(context.Background(), "  Admin@Gmail.COM  ", "admin123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
}

func TestLogin_RejectionIsIndistinguishable(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "admin@gmail.com", password: "admin1234"},
		{name: "wrong email", email: "sarah.chen@company.com", password: "admin123"},
		{name: "both wrong", email: "nobody@example.com", password: "nope"},
		{name: "empty input", email: "", password: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user, err := svc.Login(ctx, tc.email, tc.password)
			require.NoError(t, err, "rejection carries no error detail")
			assert.Nil(t, user)
		})
	}

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, persisted, "failed logins must not create a session")
}

func TestLogoutClearsSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "admin@gmail.com", "admin123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	// Logging out twice is a no-op, not an error.
	require.NoError(t, svc.Logout(ctx))
}

func TestCurrent_NoSession(t *testing.T) {
	svc, _ := newTestService(t)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestMemoryStore_CopiesOnSaveAndLoad(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := &domain.User{ID: "user-1", Name: "Admin User", Role: domain.UserRoleAdmin}
	require.NoError(t, store.Save(ctx, original))
	original.Name = "mutated"

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Admin User", loaded.Name)

	loaded.Name = "mutated again"
	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Admin User", reloaded.Name)
}
