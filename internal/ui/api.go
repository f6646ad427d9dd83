package ui

import (
	"context"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/models"
)

// API is the surface of the backend client consumed by the screens.
// *api.Client satisfies it; tests substitute a stub.
type API interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Signup(ctx context.Context, fullName, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, fullName, email string) (*models.User, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error)
	ListUsers(ctx context.Context, page, limit int) (*models.UserPage, error)
	ActivateUser(ctx context.Context, id string) (*models.User, error)
	DeactivateUser(ctx context.Context, id string) (*models.User, error)
}
