package service

import (
	"context"
	"errors"

	"github.com/mvicsa/portfolio-backend/internal/model"
)

var (
	// ErrInvalidCredentials covers unknown usernames and wrong passwords
	// alike, so the login response does not leak which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotAdmin is returned when a valid account lacks the admin role.
	ErrNotAdmin = errors.New("access denied")
	// ErrUserExists is returned when registering with a taken username or email.
	ErrUserExists = errors.New("username or email already exists")
)

// AuthService defines admin account authentication and management.
type AuthService interface {
	// Login verifies credentials and the admin role, returning a signed
	// bearer token and the account.
	Login(ctx context.Context, username, password string) (string, *model.User, error)

	// Register creates a new admin account.
	Register(ctx context.Context, username, email, password string) (*model.User, error)

	// ChangePassword verifies the current password and stores a new one.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
