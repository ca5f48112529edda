// Package claim implements the Claim repository using PostgreSQL.
//
// The at-most-one-claim-per-item invariant lives in the claims(item_id)
// unique index, not in application logic. Insert performs a bare INSERT and
// translates the index's unique_violation into domain.ErrConflict; losing
// the race is an expected business outcome, not a storage failure. There is
// no read-then-write path here and no retry: a second insert for the same
// item can never succeed.
package claim

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres"
	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// Repo provides claim persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new claim repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO claims (id, item_id, gifter_id)
VALUES ($1, $2, $3)
RETURNING id, item_id, gifter_id, claimed_at`

const existsByItemSQL = `SELECT EXISTS (SELECT 1 FROM claims WHERE item_id = $1)`

const claimJoinColumns = `
    c.id, c.item_id, c.gifter_id, c.claimed_at,
    g.name, g.email,
    i.name, i.description`

const getByItemSQL = `
SELECT` + claimJoinColumns + `
FROM claims c
JOIN gifters g ON c.gifter_id = g.id
JOIN items i ON c.item_id = i.id
WHERE c.item_id = $1`

const listByWishlistSQL = `
SELECT` + claimJoinColumns + `
FROM claims c
JOIN gifters g ON c.gifter_id = g.id
JOIN items i ON c.item_id = i.id
WHERE i.wishlist_id = $1
ORDER BY g.name, c.claimed_at`

// Insert atomically records a claim for an item. Exactly one concurrent
// caller wins; all others get domain.ErrConflict from the unique index.
func (r *Repo) Insert(ctx context.Context, itemID, gifterID uuid.UUID) (*domain.Claim, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Claim
	err := querier.QueryRow(ctx, insertSQL, uuid.New(), itemID, gifterID).
		Scan(&c.ID, &c.ItemID, &c.GifterID, &c.ClaimedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err, "claims_item_id_key") {
			return nil, fmt.Errorf("item %s: %w", itemID, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "claim", itemID)
	}

	return &c, nil
}

// ExistsByItem reports whether the item already has a claim. This answer is
// advisory: it can be stale by the time the caller acts on it, and Insert
// re-validates atomically regardless.
func (r *Repo) ExistsByItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsByItemSQL, itemID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check claim: %w", err)
	}

	return exists, nil
}

// GetByItem returns the claim for an item joined with gifter identity.
// Returns domain.ErrNotFound when the item is unclaimed.
func (r *Repo) GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.ClaimWithGifter, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanClaimWithGifter(querier.QueryRow(ctx, getByItemSQL, itemID))
	if err != nil {
		return nil, postgres.MapError(err, "claim", itemID)
	}

	return c, nil
}

// ListByWishlist returns all claims of a wishlist joined with gifter identity
// and item details, ordered by gifter name then claim time (the thank-you
// grouping order). Returns an empty slice (not nil) when nothing is claimed.
func (r *Repo) ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]domain.ClaimWithGifter, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByWishlistSQL, wishlistID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	result := []domain.ClaimWithGifter{}
	for rows.Next() {
		c, err := scanClaimWithGifter(rows)
		if err != nil {
			return nil, fmt.Errorf("list claims: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	return result, nil
}

// scanClaimWithGifter scans a single joined claim row.
func scanClaimWithGifter(row pgx.Row) (*domain.ClaimWithGifter, error) {
	var (
		id          uuid.UUID
		itemID      uuid.UUID
		gifterID    uuid.UUID
		claimedAt   time.Time
		gifterName  string
		gifterEmail pgtype.Text
		itemName    string
		itemDesc    pgtype.Text
	)

	if err := row.Scan(&id, &itemID, &gifterID, &claimedAt,
		&gifterName, &gifterEmail, &itemName, &itemDesc); err != nil {
		return nil, err
	}

	c := &domain.ClaimWithGifter{
		Claim:      domain.Claim{ID: id, ItemID: itemID, GifterID: gifterID, ClaimedAt: claimedAt},
		GifterName: gifterName,
		ItemName:   itemName,
	}
	if gifterEmail.Valid {
		c.GifterEmail = &gifterEmail.String
	}
	if itemDesc.Valid {
		c.ItemDescription = &itemDesc.String
	}
	return c, nil
}
