package service

import (
	"context"

	"github.com/mvicsa/portfolio-backend/internal/model"
)

// ProjectService defines the business logic for portfolio projects.
type ProjectService interface {
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
}
