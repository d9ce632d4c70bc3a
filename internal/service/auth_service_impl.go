package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/mvicsa/portfolio-backend/internal/model"
	"github.com/mvicsa/portfolio-backend/internal/repository"
	"github.com/mvicsa/portfolio-backend/pkg/auth"
)

const minPasswordLength = 6

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
}

// NewAuthService creates an AuthService backed by the given repository and
// token-signing secret.
func NewAuthService(userRepo repository.UserRepository, jwtSecret []byte) AuthService {
	return &authServiceImpl{userRepo: userRepo, jwtSecret: jwtSecret}
}

// Login verifies username/password and the admin role, and issues a token.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	u, err := s.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !u.IsAdmin() {
		return "", nil, ErrNotAdmin
	}

	token, err := auth.GenerateToken(u.ID, u.Username, u.Role, s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	slog.Info("admin login", "user_id", u.ID, "username", u.Username)
	return token, u, nil
}

// Register creates a new admin account after checking uniqueness.
func (s *authServiceImpl) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if len(password) < minPasswordLength {
		return nil, &ValidationError{Message: "Password must be at least 6 characters long"}
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	slog.Info("admin user created", "user_id", u.ID, "username", u.Username)
	return u, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *authServiceImpl) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return &ValidationError{Message: "New password must be at least 6 characters long"}
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, userID, string(hash))
}
