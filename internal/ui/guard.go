package ui

import (
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/session"
)

type View int

const (
	ViewLogin View = iota
	ViewSignup
	ViewDashboard
	ViewProfile
	ViewAdmin
)

func requiresAuth(v View) bool {
	return v == ViewDashboard || v == ViewProfile || v == ViewAdmin
}

func requiresAdmin(v View) bool {
	return v == ViewAdmin
}

// Resolve applies the navigation rules to a target view and returns the view
// actually shown. It consults only the locally cached session state; this is
// UI gating, not a security boundary; the server enforces authorization.
//
// Rules: unauthenticated users are sent to login for any guarded view;
// non-admins asking for the admin screen land on the dashboard; authenticated
// users asking for login or signup land on their role's home screen.
func Resolve(target View, store session.Store) View {
	switch {
	case requiresAdmin(target):
		if !store.IsAuthenticated() {
			return ViewLogin
		}
		if !store.User().IsAdmin() {
			return ViewDashboard
		}
		return target
	case requiresAuth(target):
		if !store.IsAuthenticated() {
			return ViewLogin
		}
		return target
	default:
		if store.IsAuthenticated() {
			return landing(store)
		}
		return target
	}
}

// landing is the post-login home screen for the stored user's role.
func landing(store session.Store) View {
	if !store.IsAuthenticated() {
		return ViewLogin
	}
	if store.User().IsAdmin() {
		return ViewAdmin
	}
	return ViewDashboard
}
