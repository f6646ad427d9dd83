package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/session"
)

func storeWith(t *testing.T, token string, admin bool) session.Store {
	t.Helper()
	store := session.NewMemoryStore()
	if token != "" {
		user := regularUser()
		if admin {
			user = adminUser()
		}
		require.NoError(t, store.Set(token, user))
	}
	return store
}

func TestResolve_AdminView(t *testing.T) {
	assert.Equal(t, ViewAdmin, Resolve(ViewAdmin, storeWith(t, "T", true)))
	assert.Equal(t, ViewDashboard, Resolve(ViewAdmin, storeWith(t, "T", false)))
	assert.Equal(t, ViewLogin, Resolve(ViewAdmin, storeWith(t, "", false)))
}

func TestResolve_AuthenticatedViews(t *testing.T) {
	for _, target := range []View{ViewDashboard, ViewProfile} {
		assert.Equal(t, target, Resolve(target, storeWith(t, "T", false)))
		assert.Equal(t, ViewLogin, Resolve(target, storeWith(t, "", false)))
	}
}

func TestResolve_PublicViewsRedirectWhenAuthenticated(t *testing.T) {
	assert.Equal(t, ViewAdmin, Resolve(ViewLogin, storeWith(t, "T", true)))
	assert.Equal(t, ViewDashboard, Resolve(ViewLogin, storeWith(t, "T", false)))
	assert.Equal(t, ViewDashboard, Resolve(ViewSignup, storeWith(t, "T", false)))

	assert.Equal(t, ViewLogin, Resolve(ViewLogin, storeWith(t, "", false)))
	assert.Equal(t, ViewSignup, Resolve(ViewSignup, storeWith(t, "", false)))
}

func TestResolve_AdminWithMissingSnapshot(t *testing.T) {
	// A token can exist with no cached user right after it is set; the
	// admin check then fails closed to the dashboard.
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("T", nil))
	assert.Equal(t, ViewDashboard, Resolve(ViewAdmin, store))
}

func TestLanding(t *testing.T) {
	assert.Equal(t, ViewLogin, landing(storeWith(t, "", false)))
	assert.Equal(t, ViewDashboard, landing(storeWith(t, "T", false)))
	assert.Equal(t, ViewAdmin, landing(storeWith(t, "T", true)))
}
