package service

import (
	"context"

	"github.com/mvicsa/portfolio-backend/internal/model"
	"github.com/mvicsa/portfolio-backend/internal/repository"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

// List returns projects matching the public listing filters.
func (s *projectServiceImpl) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
	return s.repo.List(ctx, opts)
}

// GetByID fetches one project.
func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new project. Technologies defaults to an empty list so the
// JSON response never carries null.
func (s *projectServiceImpl) Create(ctx context.Context, p *model.Project) error {
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return s.repo.Create(ctx, p)
}

// Update replaces a project's fields.
func (s *projectServiceImpl) Update(ctx context.Context, p *model.Project) error {
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return s.repo.Update(ctx, p)
}

// Delete removes a project.
func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
