// Package recipient implements the Recipient repository using PostgreSQL.
package recipient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres"
	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// Repo provides recipient persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recipient repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const recipientColumns = `id, email, name, password_hash, created_at`

const getByIDSQL = `
SELECT ` + recipientColumns + `
FROM recipients
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + recipientColumns + `
FROM recipients
WHERE email = $1`

const createSQL = `
INSERT INTO recipients (id, email, name, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING ` + recipientColumns

// GetByID returns a recipient by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipient, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecipient(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "recipient", id)
	}

	return rec, nil
}

// GetByEmail returns a recipient by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Recipient, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecipient(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "recipient", uuid.Nil)
	}

	return rec, nil
}

// Create inserts a new recipient and returns the persisted domain.Recipient.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, rec *domain.Recipient) (*domain.Recipient, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanRecipient(querier.QueryRow(ctx, createSQL, id, rec.Email, rec.Name, rec.PasswordHash))
	if err != nil {
		return nil, postgres.MapError(err, "recipient", id)
	}

	return created, nil
}

// scanRecipient scans a single recipient row.
func scanRecipient(row pgx.Row) (*domain.Recipient, error) {
	var (
		id           uuid.UUID
		email        string
		name         string
		passwordHash string
		createdAt    time.Time
	)

	if err := row.Scan(&id, &email, &name, &passwordHash, &createdAt); err != nil {
		return nil, fmt.Errorf("scan recipient: %w", err)
	}

	return &domain.Recipient{
		ID:           id,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}, nil
}
