// Package gifter implements the Gifter repository using PostgreSQL.
// Gifters are matched by the exact (name, email) pair; a missing email is
// stored as NULL, and NULL is the only "absent" representation; callers
// normalize empty strings before reaching this package.
package gifter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres"
	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// Repo provides gifter persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new gifter repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const gifterColumns = `id, name, email, created_at`

// IS NOT DISTINCT FROM makes NULL = NULL match, which plain equality does not.
const getByNameEmailSQL = `
SELECT ` + gifterColumns + `
FROM gifters
WHERE name = $1 AND email IS NOT DISTINCT FROM $2`

const createSQL = `
INSERT INTO gifters (id, name, email)
VALUES ($1, $2, $3)
RETURNING ` + gifterColumns

// GetByNameEmail returns the gifter exactly matching (name, email-or-NULL).
// Matching is deliberately exact; case or whitespace variants create separate
// gifters, which is acceptable for this domain.
func (r *Repo) GetByNameEmail(ctx context.Context, name string, email *string) (*domain.Gifter, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	g, err := scanGifter(querier.QueryRow(ctx, getByNameEmailSQL, name, ptrToPgText(email)))
	if err != nil {
		return nil, postgres.MapError(err, "gifter", uuid.Nil)
	}

	return g, nil
}

// Create inserts a new gifter.
func (r *Repo) Create(ctx context.Context, g *domain.Gifter) (*domain.Gifter, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := g.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanGifter(querier.QueryRow(ctx, createSQL, id, g.Name, ptrToPgText(g.Email)))
	if err != nil {
		return nil, postgres.MapError(err, "gifter", id)
	}

	return created, nil
}

// scanGifter scans a single gifter row.
func scanGifter(row pgx.Row) (*domain.Gifter, error) {
	var (
		id        uuid.UUID
		name      string
		email     pgtype.Text
		createdAt time.Time
	)

	if err := row.Scan(&id, &name, &email, &createdAt); err != nil {
		return nil, err
	}

	g := &domain.Gifter{ID: id, Name: name, CreatedAt: createdAt}
	if email.Valid {
		g.Email = &email.String
	}
	return g, nil
}

// ptrToPgText converts a *string to pgtype.Text (nil → NULL).
func ptrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
