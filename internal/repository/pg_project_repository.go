package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvicsa/portfolio-backend/internal/model"
)

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectSelectCols = `id, title, description, short_description, image, technologies,
	COALESCE(github_url, ''), COALESCE(live_url, ''), featured, display_order, category,
	created_at, updated_at`

func scanProject(scan func(...any) error) (*model.Project, error) {
	var p model.Project
	if err := scan(&p.ID, &p.Title, &p.Description, &p.ShortDescription, &p.Image, &p.Technologies,
		&p.GitHubURL, &p.LiveURL, &p.Featured, &p.Order, &p.Category,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns projects matching opts, ordered by display order then newest
// first.
func (r *PgProjectRepository) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
	var conditions []string
	var args []any

	if opts.Featured != nil {
		args = append(args, *opts.Featured)
		conditions = append(conditions, "featured = $"+strconv.Itoa(len(args)))
	}
	if opts.Category != "" {
		args = append(args, opts.Category)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+projectSelectCols+` FROM projects`+where+
			` ORDER BY display_order ASC, created_at DESC`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID fetches a project by id. Returns ErrNotFound if absent.
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+projectSelectCols+` FROM projects WHERE id = $1`, id)
	return scanProject(row.Scan)
}

// Create inserts a project and populates ID and timestamps from RETURNING.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, short_description, image, technologies,
		                       github_url, live_url, featured, display_order, category)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Description, p.ShortDescription, p.Image, p.Technologies,
		p.GitHubURL, p.LiveURL, p.Featured, p.Order, p.Category,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update replaces all editable fields of a project.
func (r *PgProjectRepository) Update(ctx context.Context, p *model.Project) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE projects
		 SET title = $1, description = $2, short_description = $3, image = $4, technologies = $5,
		     github_url = NULLIF($6, ''), live_url = NULLIF($7, ''), featured = $8,
		     display_order = $9, category = $10, updated_at = NOW()
		 WHERE id = $11
		 RETURNING updated_at`,
		p.Title, p.Description, p.ShortDescription, p.Image, p.Technologies,
		p.GitHubURL, p.LiveURL, p.Featured, p.Order, p.Category, p.ID,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes a project. Returns ErrNotFound if absent.
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
