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

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, int, error)
	CountByStatus(ctx context.Context) (model.ContactCounts, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.ContactMessage, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const contactSelectCols = `id, name, email, subject, message, ip, status, created_at, updated_at`

// Save inserts a new contact_messages row and populates msg.ID and timestamps
// from the database RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, subject, message, ip, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.IP, msg.Status,
	).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
}

// escapeLike escapes ILIKE wildcard characters in a user-supplied search term.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// buildFilter returns the WHERE clause and bind args shared by List's page
// and count queries. Status "" or "all" matches every status; a search term
// matches case-insensitively against name, email, subject and message.
func buildFilter(opts model.ContactListOptions) (string, []any) {
	var conditions []string
	var args []any

	status := strings.TrimSpace(opts.Status)
	if status != "" && status != "all" {
		args = append(args, status)
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}

	if search := strings.TrimSpace(opts.Search); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		p := "$" + strconv.Itoa(len(args))
		conditions = append(conditions,
			"(name ILIKE "+p+" OR email ILIKE "+p+" OR subject ILIKE "+p+" OR message ILIKE "+p+")")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List returns messages matching opts sorted newest-first, plus the total
// number of matches for pagination.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, int, error) {
	where, args := buildFilter(opts)

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_messages`+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitArg := "$" + strconv.Itoa(len(args)+1)
	offsetArg := "$" + strconv.Itoa(len(args)+2)
	args = append(args, opts.Limit, opts.Offset)

	rows, err := r.pool.Query(ctx,
		`SELECT `+contactSelectCols+` FROM contact_messages`+where+
			` ORDER BY created_at DESC LIMIT `+limitArg+` OFFSET `+offsetArg,
		args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IP, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, err
		}
		messages = append(messages, &m)
	}
	return messages, total, rows.Err()
}

// CountByStatus returns message counts grouped by status, with Total being
// the count across all statuses.
func (r *PgContactRepository) CountByStatus(ctx context.Context) (model.ContactCounts, error) {
	var counts model.ContactCounts
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM contact_messages GROUP BY status`)
	if err != nil {
		return counts, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return counts, err
		}
		switch status {
		case model.StatusUnread:
			counts.Unread = n
		case model.StatusRead:
			counts.Read = n
		case model.StatusReplied:
			counts.Replied = n
		}
		counts.Total += n
	}
	return counts, rows.Err()
}

// UpdateStatus sets the status of one message and returns the updated row.
// Returns ErrNotFound if no message has the given id.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id, status string) (*model.ContactMessage, error) {
	var m model.ContactMessage
	err := r.pool.QueryRow(ctx,
		`UPDATE contact_messages SET status = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+contactSelectCols,
		status, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IP, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
