package service

import (
	"context"

	"github.com/mvicsa/portfolio-backend/internal/model"
)

// ProfileService defines the business logic for the site-owner profile.
type ProfileService interface {
	// Get returns the profile, seeding a default one when none exists and
	// migrating the legacy skills shape when encountered.
	Get(ctx context.Context) (*model.Profile, error)

	// Update replaces the profile's editable fields, creating the profile
	// if it does not exist yet. The stored result is returned.
	Update(ctx context.Context, p *model.Profile) (*model.Profile, error)
}
