package ui

import (
	"context"
	"errors"
	"time"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/models"
)

// stubAPI implements API for screen tests. Unset functions fail loudly and
// every call is counted.
type stubAPI struct {
	loginFn          func(email, password string) (*models.AuthResponse, error)
	signupFn         func(fullName, email, password string) (*models.AuthResponse, error)
	logoutFn         func() error
	currentUserFn    func() (*models.User, error)
	profileFn        func() (*models.User, error)
	updateProfileFn  func(fullName, email string) (*models.User, error)
	changePasswordFn func(current, next string) (string, error)
	listUsersFn      func(page, limit int) (*models.UserPage, error)
	activateFn       func(id string) (*models.User, error)
	deactivateFn     func(id string) (*models.User, error)

	loginCalls      int
	signupCalls     int
	logoutCalls     int
	listUsersCalls  int
	activateCalls   int
	deactivateCalls int
}

var errStubUnset = errors.New("stub not configured")

func (s *stubAPI) Login(_ context.Context, email, password string) (*models.AuthResponse, error) {
	s.loginCalls++
	if s.loginFn == nil {
		return nil, errStubUnset
	}
	return s.loginFn(email, password)
}

func (s *stubAPI) Signup(_ context.Context, fullName, email, password string) (*models.AuthResponse, error) {
	s.signupCalls++
	if s.signupFn == nil {
		return nil, errStubUnset
	}
	return s.signupFn(fullName, email, password)
}

func (s *stubAPI) Logout(context.Context) error {
	s.logoutCalls++
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn()
}

func (s *stubAPI) CurrentUser(context.Context) (*models.User, error) {
	if s.currentUserFn == nil {
		return nil, errStubUnset
	}
	return s.currentUserFn()
}

func (s *stubAPI) Profile(context.Context) (*models.User, error) {
	if s.profileFn == nil {
		return nil, errStubUnset
	}
	return s.profileFn()
}

func (s *stubAPI) UpdateProfile(_ context.Context, fullName, email string) (*models.User, error) {
	if s.updateProfileFn == nil {
		return nil, errStubUnset
	}
	return s.updateProfileFn(fullName, email)
}

func (s *stubAPI) ChangePassword(_ context.Context, current, next string) (string, error) {
	if s.changePasswordFn == nil {
		return "", errStubUnset
	}
	return s.changePasswordFn(current, next)
}

func (s *stubAPI) ListUsers(_ context.Context, page, limit int) (*models.UserPage, error) {
	s.listUsersCalls++
	if s.listUsersFn == nil {
		return nil, errStubUnset
	}
	return s.listUsersFn(page, limit)
}

func (s *stubAPI) ActivateUser(_ context.Context, id string) (*models.User, error) {
	s.activateCalls++
	if s.activateFn == nil {
		return nil, errStubUnset
	}
	return s.activateFn(id)
}

func (s *stubAPI) DeactivateUser(_ context.Context, id string) (*models.User, error) {
	s.deactivateCalls++
	if s.deactivateFn == nil {
		return nil, errStubUnset
	}
	return s.deactivateFn(id)
}

func adminUser() *models.User {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &models.User{
		ID:        "user-1",
		Email:     "john.doe@example.com",
		FullName:  "John Doe",
		Role:      models.RoleAdmin,
		Status:    models.StatusActive,
		CreatedAt: &created,
	}
}

func regularUser() *models.User {
	return &models.User{
		ID:       "user-2",
		Email:    "jane@example.com",
		FullName: "Jane Roe",
		Role:     models.RoleUser,
		Status:   models.StatusActive,
	}
}
