package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mvicsa/portfolio-backend/internal/model"
	"github.com/mvicsa/portfolio-backend/internal/repository"
)

// profileServiceImpl is the production implementation of ProfileService.
type profileServiceImpl struct {
	repo repository.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileServiceImpl{repo: repo}
}

// Get returns the profile. A missing profile is seeded with defaults so the
// public pages always have content. Legacy skills (plain string array) are
// rewritten to the object shape in place; a failed rewrite is logged and the
// migrated in-memory value is still served.
func (s *profileServiceImpl) Get(ctx context.Context) (*model.Profile, error) {
	p, legacySkills, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		seeded := defaultProfile()
		if err := s.repo.Create(ctx, seeded); err != nil {
			return nil, err
		}
		slog.Info("seeded default profile", "profile_id", seeded.ID)
		return seeded, nil
	}
	if err != nil {
		return nil, err
	}

	if legacySkills {
		if err := s.repo.UpdateSkills(ctx, p.ID, p.Skills); err != nil {
			slog.Error("persisting migrated skills failed", "error", err, "profile_id", p.ID)
		} else {
			slog.Info("migrated legacy skills format", "profile_id", p.ID, "skills", len(p.Skills))
		}
	}
	return p, nil
}

// Update replaces the profile fields, creating the row when none exists.
func (s *profileServiceImpl) Update(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	current, _, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		if err := s.repo.Create(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}
	if err != nil {
		return nil, err
	}

	p.ID = current.ID
	p.CreatedAt = current.CreatedAt
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// defaultProfile is the content served before the owner edits anything.
func defaultProfile() *model.Profile {
	return &model.Profile{
		Name:      "Mohamed",
		Title:     "MERN Stack Developer",
		Bio:       "I craft exceptional digital experiences by combining cutting-edge technology with beautiful design.",
		Email:     "mohamed@example.com",
		Location:  "Cairo, Egypt",
		Avatar:    "/avatar.jpg",
		ResumeURL: "/resume.pdf",
		SocialLinks: model.SocialLinks{
			GitHub:   "https://github.com/mohamed",
			LinkedIn: "https://linkedin.com/in/mohamed",
		},
		Stats: model.ProfileStats{
			ProjectsCompleted:  50,
			YearsExperience:    3,
			ClientSatisfaction: 100,
		},
		Skills: []model.Skill{
			{Name: "React", Percentage: 90},
			{Name: "Node.js", Percentage: 85},
			{Name: "MongoDB", Percentage: 80},
			{Name: "Express", Percentage: 85},
			{Name: "TypeScript", Percentage: 75},
			{Name: "Next.js", Percentage: 80},
		},
		Experiences: []model.Experience{
			{
				Title:       "Senior Full Stack Developer",
				Company:     "TechCorp",
				Period:      "2022 - Present",
				Description: "Leading development of enterprise web applications using React, Node.js, and cloud technologies.",
			},
			{
				Title:       "Frontend Developer",
				Company:     "DigitalAgency",
				Period:      "2021 - 2022",
				Description: "Built responsive web applications and collaborated with design teams to create exceptional user experiences.",
			},
			{
				Title:       "Junior Developer",
				Company:     "StartupHub",
				Period:      "2020 - 2021",
				Description: "Developed features for SaaS platform and learned modern web development practices.",
			},
		},
	}
}
