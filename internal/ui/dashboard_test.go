package ui

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/models"
)

func TestDashboard_EnterRefreshesSnapshot(t *testing.T) {
	fresh := *regularUser()
	fresh.FullName = "Jane Refreshed"
	stub := &stubAPI{
		currentUserFn: func() (*models.User, error) { return &fresh, nil },
	}
	store := storeWith(t, "T", false)
	m := NewDashboardModel(stub, store, zerolog.Nop())

	cmd := m.Enter()
	require.NotNil(t, cmd)
	assert.Equal(t, "Jane Roe", m.user.FullName)

	m, _ = m.Update(cmd())
	assert.Equal(t, "Jane Refreshed", m.user.FullName)
	assert.Equal(t, "Jane Refreshed", store.User().FullName)
}

func TestDashboard_StaleRefreshDropped(t *testing.T) {
	m := NewDashboardModel(&stubAPI{}, storeWith(t, "T", false), zerolog.Nop())
	m.user = regularUser()
	m.seq = 2

	m, _ = m.Update(currentUserMsg{seq: 1, user: adminUser()})
	assert.Equal(t, "Jane Roe", m.user.FullName)
}

func TestDashboard_MenuPerRole(t *testing.T) {
	m := NewDashboardModel(&stubAPI{}, storeWith(t, "T", false), zerolog.Nop())

	m.user = regularUser()
	assert.Equal(t, []string{"Profile", "Logout"}, m.menu())

	m.user = adminUser()
	assert.Equal(t, []string{"Profile", "User Management", "Logout"}, m.menu())
}

func TestDashboard_MenuSelection(t *testing.T) {
	m := NewDashboardModel(&stubAPI{}, storeWith(t, "T", true), zerolog.Nop())
	m.user = adminUser()

	m, _ = m.Update(key("down"))
	m, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, navigateMsg{target: ViewAdmin}, cmd())
}
