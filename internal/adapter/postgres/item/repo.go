// Package item implements the Item repository using PostgreSQL.
// Owner-scoped writes enforce the recipient → wishlist → item ownership chain
// in SQL with a join, never in application code.
package item

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres"
	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const itemColumns = `id, wishlist_id, name, description, link, created_at`

const createSQL = `
INSERT INTO items (id, wishlist_id, name, description, link)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + itemColumns

const listByWishlistSQL = `
SELECT ` + itemColumns + `
FROM items
WHERE wishlist_id = $1
ORDER BY created_at`

const getOwnedSQL = `
SELECT i.id, i.wishlist_id, i.name, i.description, i.link, i.created_at
FROM items i
JOIN wishlists w ON i.wishlist_id = w.id
WHERE i.id = $1 AND w.recipient_id = $2`

const getByWishlistSQL = `
SELECT ` + itemColumns + `
FROM items
WHERE id = $1 AND wishlist_id = $2`

const deleteOwnedSQL = `
DELETE FROM items i
USING wishlists w
WHERE i.wishlist_id = w.id AND i.id = $1 AND w.recipient_id = $2`

const countByWishlistSQL = `SELECT count(*) FROM items WHERE wishlist_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetOwned returns an item by primary key, filtered through the ownership
// chain. Returns domain.ErrNotFound if the item does not exist or its
// wishlist belongs to another recipient.
func (r *Repo) GetOwned(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(querier.QueryRow(ctx, getOwnedSQL, itemID, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}

	return item, nil
}

// GetByWishlist returns an item scoped to a specific wishlist, for the
// share-token access path. Returns domain.ErrNotFound if the item does not
// exist under that wishlist.
func (r *Repo) GetByWishlist(ctx context.Context, wishlistID, itemID uuid.UUID) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(querier.QueryRow(ctx, getByWishlistSQL, itemID, wishlistID))
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}

	return item, nil
}

// ListByWishlist returns all items of a wishlist in creation order.
// Returns an empty slice (not nil) when the wishlist has no items.
func (r *Repo) ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByWishlistSQL, wishlistID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	result := []domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("list items: %w", err)
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return result, nil
}

// CountByWishlist returns the number of items in a wishlist.
func (r *Repo) CountByWishlist(ctx context.Context, wishlistID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByWishlistSQL, wishlistID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new item. The caller must have verified wishlist ownership;
// a dangling wishlist_id maps to domain.ErrNotFound via the FK.
func (r *Repo) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := item.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanItem(querier.QueryRow(ctx, createSQL,
		id, item.WishlistID, item.Name, ptrToPgText(item.Description), ptrToPgText(item.Link)))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	return created, nil
}

// Update modifies an item's fields using partial update params, filtered
// through the ownership chain. Returns domain.ErrNotFound if the item does
// not exist or its wishlist belongs to another recipient.
func (r *Repo) Update(ctx context.Context, ownerID, itemID uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error) {
	if params.Name == nil && params.Description == nil && params.Link == nil {
		return r.GetOwned(ctx, ownerID, itemID)
	}

	// Ownership is enforced by the correlated subquery rather than a join:
	// UPDATE ... FROM with RETURNING would duplicate the row set.
	update := psql.Update("items").
		Where(sq.Eq{"id": itemID}).
		Where(sq.Expr("wishlist_id IN (SELECT id FROM wishlists WHERE recipient_id = ?)", ownerID)).
		Suffix("RETURNING " + itemColumns)

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		update = update.Set("description", emptyToNull(*params.Description))
	}
	if params.Link != nil {
		update = update.Set("link", emptyToNull(*params.Link))
	}

	sqlStr, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(querier.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}

	return item, nil
}

// Delete removes an item through the ownership chain. CASCADE deletes its
// claim, if any. Returns domain.ErrNotFound if the item does not exist or
// its wishlist belongs to another recipient.
func (r *Repo) Delete(ctx context.Context, ownerID, itemID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteOwnedSQL, itemID, ownerID)
	if err != nil {
		return postgres.MapError(err, "item", itemID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning and pgtype helpers
// ---------------------------------------------------------------------------

// scanItem scans a single item row.
func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		id          uuid.UUID
		wishlistID  uuid.UUID
		name        string
		description pgtype.Text
		link        pgtype.Text
		createdAt   time.Time
	)

	if err := row.Scan(&id, &wishlistID, &name, &description, &link, &createdAt); err != nil {
		return nil, err
	}

	return &domain.Item{
		ID:          id,
		WishlistID:  wishlistID,
		Name:        name,
		Description: pgTextToPtr(description),
		Link:        pgTextToPtr(link),
		CreatedAt:   createdAt,
	}, nil
}

// pgTextToPtr returns a *string (nil when NULL).
func pgTextToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

// ptrToPgText converts a *string to pgtype.Text (nil → NULL).
func ptrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// emptyToNull maps ptr("") clear semantics to a NULL pgtype.Text.
func emptyToNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
