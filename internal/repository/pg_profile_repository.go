package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvicsa/portfolio-backend/internal/model"
)

// PgProfileRepository is the PostgreSQL implementation of ProfileRepository.
// Nested shapes (social links, stats, skills, experiences) live in JSONB
// columns.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPgProfileRepository creates a PgProfileRepository backed by the given pool.
func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

var _ ProfileRepository = (*PgProfileRepository)(nil)

// Get returns the single profile row. The skills column is decoded leniently:
// the second result reports that the stored value used the legacy
// string-array shape and should be rewritten via UpdateSkills.
// Returns ErrNotFound when no profile exists yet.
func (r *PgProfileRepository) Get(ctx context.Context) (*model.Profile, bool, error) {
	var p model.Profile
	var skillsRaw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, title, bio, email, COALESCE(phone, ''), location, avatar, resume_url,
		        social_links, stats, skills, experiences, created_at, updated_at
		 FROM profiles
		 ORDER BY created_at ASC
		 LIMIT 1`,
	).Scan(&p.ID, &p.Name, &p.Title, &p.Bio, &p.Email, &p.Phone, &p.Location, &p.Avatar, &p.ResumeURL,
		&p.SocialLinks, &p.Stats, &skillsRaw, &p.Experiences, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, ErrNotFound
	}
	if err != nil {
		return nil, false, err
	}

	skills, legacy, err := model.ParseSkills(skillsRaw)
	if err != nil {
		return nil, false, err
	}
	p.Skills = skills
	return &p, legacy, nil
}

// Create inserts the profile and populates ID and timestamps from RETURNING.
func (r *PgProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO profiles (name, title, bio, email, phone, location, avatar, resume_url,
		                       social_links, stats, skills, experiences)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at, updated_at`,
		p.Name, p.Title, p.Bio, p.Email, p.Phone, p.Location, p.Avatar, p.ResumeURL,
		p.SocialLinks, p.Stats, p.Skills, p.Experiences,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update replaces all editable profile fields.
func (r *PgProfileRepository) Update(ctx context.Context, p *model.Profile) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE profiles
		 SET name = $1, title = $2, bio = $3, email = $4, phone = NULLIF($5, ''),
		     location = $6, avatar = $7, resume_url = $8,
		     social_links = $9, stats = $10, skills = $11, experiences = $12,
		     updated_at = NOW()
		 WHERE id = $13
		 RETURNING updated_at`,
		p.Name, p.Title, p.Bio, p.Email, p.Phone, p.Location, p.Avatar, p.ResumeURL,
		p.SocialLinks, p.Stats, p.Skills, p.Experiences, p.ID,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// UpdateSkills rewrites only the skills column. Used to persist the one-time
// legacy string-array migration.
func (r *PgProfileRepository) UpdateSkills(ctx context.Context, id string, skills []model.Skill) error {
	encoded, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE profiles SET skills = $1, updated_at = NOW() WHERE id = $2`,
		encoded, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
