// Package wishlist implements the Wishlist repository using PostgreSQL.
// Owner-scoped operations enforce ownership in SQL via recipient_id filters;
// the share-token lookup is the only unauthenticated read path.
package wishlist

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres"
	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// WithRecipient is the share-token read model: a wishlist joined with its
// owner's display name for the public gifter view.
type WithRecipient struct {
	domain.Wishlist
	RecipientName string
}

// Repo provides wishlist persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new wishlist repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const wishlistColumns = `id, recipient_id, title, share_token, end_date, created_at`

const getByIDSQL = `
SELECT ` + wishlistColumns + `
FROM wishlists
WHERE id = $1 AND recipient_id = $2`

const listByOwnerSQL = `
SELECT ` + wishlistColumns + `
FROM wishlists
WHERE recipient_id = $1
ORDER BY created_at DESC`

const createSQL = `
INSERT INTO wishlists (id, recipient_id, title, share_token, end_date)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + wishlistColumns

const deleteSQL = `
DELETE FROM wishlists
WHERE id = $1 AND recipient_id = $2`

const getByShareTokenSQL = `
SELECT w.id, w.recipient_id, w.title, w.share_token, w.end_date, w.created_at,
       r.name AS recipient_name
FROM wishlists w
JOIN recipients r ON w.recipient_id = r.id
WHERE w.share_token = $1`

const tokenExistsSQL = `SELECT EXISTS (SELECT 1 FROM wishlists WHERE share_token = $1)`

const countByOwnerSQL = `SELECT count(*) FROM wishlists WHERE recipient_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a wishlist by primary key with recipient_id filter.
// Returns domain.ErrNotFound if the wishlist does not exist or belongs to
// another recipient.
func (r *Repo) GetByID(ctx context.Context, ownerID, wishlistID uuid.UUID) (*domain.Wishlist, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWishlist(querier.QueryRow(ctx, getByIDSQL, wishlistID, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "wishlist", wishlistID)
	}

	return w, nil
}

// ListByOwner returns all wishlists for a recipient, newest first.
// Returns an empty slice (not nil) when the recipient has none.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Wishlist, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list wishlists: %w", err)
	}
	defer rows.Close()

	result := []*domain.Wishlist{}
	for rows.Next() {
		w, err := scanWishlist(rows)
		if err != nil {
			return nil, fmt.Errorf("list wishlists: %w", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list wishlists: %w", err)
	}

	return result, nil
}

// GetByShareToken returns the wishlist carrying the given share token, joined
// with the owner's display name. Returns domain.ErrNotFound for unknown tokens.
func (r *Repo) GetByShareToken(ctx context.Context, token string) (*WithRecipient, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		w             domain.Wishlist
		recipientName string
	)
	err := querier.QueryRow(ctx, getByShareTokenSQL, token).Scan(
		&w.ID, &w.RecipientID, &w.Title, &w.ShareToken, &w.EndDate, &w.CreatedAt,
		&recipientName,
	)
	if err != nil {
		return nil, postgres.MapError(err, "wishlist", uuid.Nil)
	}

	return &WithRecipient{Wishlist: w, RecipientName: recipientName}, nil
}

// TokenExists reports whether a share token is already in use by any wishlist.
func (r *Repo) TokenExists(ctx context.Context, token string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, tokenExistsSQL, token).Scan(&exists); err != nil {
		return false, fmt.Errorf("check share token: %w", err)
	}

	return exists, nil
}

// CountByOwner returns the number of wishlists owned by a recipient.
func (r *Repo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByOwnerSQL, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count wishlists: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new wishlist and returns the persisted domain.Wishlist.
// Returns domain.ErrAlreadyExists if the share token collides; callers
// obtain tokens from the generator's uniqueness loop, so this is rare.
func (r *Repo) Create(ctx context.Context, w *domain.Wishlist) (*domain.Wishlist, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := w.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanWishlist(querier.QueryRow(ctx, createSQL,
		id, w.RecipientID, w.Title, w.ShareToken, w.EndDate))
	if err != nil {
		return nil, postgres.MapError(err, "wishlist", id)
	}

	return created, nil
}

// Update modifies title and/or end_date using partial update params.
// The share token is stable for the wishlist's lifetime and is never updated.
// Returns domain.ErrNotFound if the wishlist does not exist or belongs to
// another recipient.
func (r *Repo) Update(ctx context.Context, ownerID, wishlistID uuid.UUID, params domain.WishlistUpdateParams) (*domain.Wishlist, error) {
	if params.Title == nil && params.EndDate == nil {
		return r.GetByID(ctx, ownerID, wishlistID)
	}

	update := psql.Update("wishlists").
		Where(sq.Eq{"id": wishlistID, "recipient_id": ownerID}).
		Suffix("RETURNING " + wishlistColumns)

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.EndDate != nil {
		update = update.Set("end_date", *params.EndDate)
	}

	sqlStr, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWishlist(querier.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "wishlist", wishlistID)
	}

	return w, nil
}

// Delete removes a wishlist. CASCADE deletes its items, and their claims.
// Returns domain.ErrNotFound if the wishlist does not exist or belongs to
// another recipient.
func (r *Repo) Delete(ctx context.Context, ownerID, wishlistID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, wishlistID, ownerID)
	if err != nil {
		return postgres.MapError(err, "wishlist", wishlistID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wishlist %s: %w", wishlistID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanWishlist scans a single wishlist row from either pgx.Row or pgx.Rows.
func scanWishlist(row pgx.Row) (*domain.Wishlist, error) {
	var (
		id          uuid.UUID
		recipientID uuid.UUID
		title       string
		shareToken  string
		endDate     time.Time
		createdAt   time.Time
	)

	if err := row.Scan(&id, &recipientID, &title, &shareToken, &endDate, &createdAt); err != nil {
		return nil, err
	}

	return &domain.Wishlist{
		ID:          id,
		RecipientID: recipientID,
		Title:       title,
		ShareToken:  shareToken,
		EndDate:     endDate,
		CreatedAt:   createdAt,
	}, nil
}
