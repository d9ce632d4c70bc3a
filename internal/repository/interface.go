package repository

import (
	"context"

	"github.com/mvicsa/portfolio-backend/internal/model"
)

// DB is the liveness-check interface used by the health endpoint.
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository is the persistence interface for admin accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// ProfileRepository is the persistence interface for the single profile
// document.
type ProfileRepository interface {
	// Get returns the profile. The second result reports that the stored
	// skills column used the legacy string-array shape and should be
	// rewritten via UpdateSkills.
	Get(ctx context.Context) (*model.Profile, bool, error)
	Create(ctx context.Context, p *model.Profile) error
	Update(ctx context.Context, p *model.Profile) error
	UpdateSkills(ctx context.Context, id string, skills []model.Skill) error
}

// ProjectRepository is the persistence interface for portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
}
