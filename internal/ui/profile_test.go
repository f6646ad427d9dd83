package ui

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/api"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/models"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/session"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/validation"
)

func newProfile(t *testing.T, stub *stubAPI) (*ProfileModel, session.Store, *Notifications) {
	t.Helper()
	notify := NewNotifications()
	store := storeWith(t, "T", false)
	return NewProfileModel(stub, store, zerolog.Nop(), notify), store, notify
}

func TestProfile_EnterShowsCachedSnapshotThenFetches(t *testing.T) {
	fetched := *regularUser()
	fetched.FullName = "Jane Q. Roe"
	stub := &stubAPI{
		profileFn: func() (*models.User, error) { return &fetched, nil },
	}
	m, store, _ := newProfile(t, stub)

	cmd := m.Enter()
	require.NotNil(t, cmd)
	// The cached snapshot renders before the fetch resolves.
	require.NotNil(t, m.user)
	assert.Equal(t, "Jane Roe", m.user.FullName)

	m, _ = m.Update(cmd())
	assert.Equal(t, "Jane Q. Roe", m.user.FullName)
	// The fresh record replaces the cached snapshot.
	assert.Equal(t, "Jane Q. Roe", store.User().FullName)
}

func TestProfile_StaleFetchDropped(t *testing.T) {
	m, _, _ := newProfile(t, &stubAPI{})
	m.user = regularUser()
	m.seq = 2

	outdated := *adminUser()
	m, _ = m.Update(profileFetchedMsg{seq: 1, user: &outdated})

	assert.Equal(t, "Jane Roe", m.user.FullName)
}

func TestProfile_FetchFailureKeepsSnapshot(t *testing.T) {
	m, _, notify := newProfile(t, &stubAPI{})
	m.user = regularUser()
	m.seq = 1

	m, cmd := m.Update(profileFetchedMsg{seq: 1, err: &api.Error{Kind: api.KindNetwork}})

	assert.Nil(t, cmd)
	assert.Equal(t, "Jane Roe", m.user.FullName)
	assert.Empty(t, notify.Entries())
}

func TestProfile_EditPrefillsAndSaves(t *testing.T) {
	updated := *regularUser()
	updated.FullName = "Jane Updated"
	stub := &stubAPI{
		updateProfileFn: func(fullName, email string) (*models.User, error) {
			assert.Equal(t, "Jane Updated", fullName)
			assert.Equal(t, "jane@example.com", email)
			return &updated, nil
		},
	}
	m, store, notify := newProfile(t, stub)
	m.user = regularUser()

	m, _ = m.Update(key("e"))
	require.True(t, m.editing)
	assert.Equal(t, "Jane Roe", m.fullName)
	assert.Equal(t, "jane@example.com", m.email)

	m.fullName = "Jane Updated"
	m, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.saving)

	m, cmd = m.Update(cmd())
	require.NotNil(t, cmd)
	assert.False(t, m.editing)
	assert.Equal(t, "Jane Updated", m.user.FullName)
	assert.Equal(t, "Jane Updated", store.User().FullName)

	entries := notify.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Profile updated successfully", entries[0].Message)
}

func TestProfile_EditValidationBlocksSave(t *testing.T) {
	stub := &stubAPI{}
	m, _, _ := newProfile(t, stub)
	m.user = regularUser()

	m, _ = m.Update(key("e"))
	m.email = "not-an-email"

	m, cmd := m.Update(key("enter"))
	assert.Nil(t, cmd)
	assert.False(t, m.saving)
	assert.NotEmpty(t, m.errors[validation.FieldEmail])
}

func TestProfile_SaveFailureStaysInEditMode(t *testing.T) {
	stub := &stubAPI{
		updateProfileFn: func(string, string) (*models.User, error) {
			return nil, &api.Error{Kind: api.KindStatus, Status: 409, Message: "Email already in use"}
		},
	}
	m, _, _ := newProfile(t, stub)
	m.user = regularUser()
	m, _ = m.Update(key("e"))

	m, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())

	assert.True(t, m.editing)
	assert.False(t, m.saving)
	assert.Equal(t, "Email already in use", m.serverError)
}

func TestProfile_ChangePassword(t *testing.T) {
	stub := &stubAPI{
		changePasswordFn: func(current, next string) (string, error) {
			assert.Equal(t, "OldPass123", current)
			assert.Equal(t, "NewPass456", next)
			return "Password changed successfully", nil
		},
	}
	m, _, notify := newProfile(t, stub)
	m.user = regularUser()

	m, _ = m.Update(key("c"))
	require.True(t, m.pwOpen)

	m.pwCurrent = "OldPass123"
	m.pwNew = "NewPass456"
	m.pwConfirm = "NewPass456"

	m, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	m, cmd = m.Update(cmd())
	require.NotNil(t, cmd)

	assert.False(t, m.pwOpen)
	entries := notify.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Password changed successfully", entries[0].Message)
}

func TestProfile_ChangePasswordMismatch(t *testing.T) {
	m, _, _ := newProfile(t, &stubAPI{})
	m.user = regularUser()
	m, _ = m.Update(key("c"))

	m.pwCurrent = "OldPass123"
	m.pwNew = "NewPass456"
	m.pwConfirm = "Different1"

	m, cmd := m.Update(key("enter"))
	assert.Nil(t, cmd)
	assert.False(t, m.pwSaving)
	assert.NotEmpty(t, m.pwErrors[validation.FieldConfirmPassword])
}

func TestProfile_EscReturnsToLanding(t *testing.T) {
	m, _, _ := newProfile(t, &stubAPI{})
	m.user = regularUser()

	m, cmd := m.Update(key("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, navigateMsg{target: ViewDashboard}, cmd())
}
