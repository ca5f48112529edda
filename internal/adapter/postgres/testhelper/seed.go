package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedRecipient creates a recipient with a unique email.
func SeedRecipient(t *testing.T, pool *pgxpool.Pool) domain.Recipient {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	rec := domain.Recipient{
		ID:           uuid.New(),
		Email:        "recipient-" + suffix + "@example.com",
		Name:         "Test Recipient " + suffix,
		PasswordHash: "$2a$10$seeded-hash-not-a-real-one-" + suffix,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO recipients (id, email, name, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		rec.ID, rec.Email, rec.Name, rec.PasswordHash,
	).Scan(&rec.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipient: %v", err)
	}

	return rec
}

// SeedWishlist creates a wishlist for the given recipient with a unique share
// token and the given end date.
func SeedWishlist(t *testing.T, pool *pgxpool.Pool, recipientID uuid.UUID, endDate time.Time) domain.Wishlist {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	w := domain.Wishlist{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Title:       "Wishlist " + suffix,
		ShareToken:  "seeded-token-" + suffix,
		EndDate:     endDate,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO wishlists (id, recipient_id, title, share_token, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING end_date, created_at`,
		w.ID, w.RecipientID, w.Title, w.ShareToken, w.EndDate,
	).Scan(&w.EndDate, &w.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedWishlist: %v", err)
	}

	return w
}

// SeedItem creates an item under the given wishlist.
func SeedItem(t *testing.T, pool *pgxpool.Pool, wishlistID uuid.UUID, name string) domain.Item {
	t.Helper()
	ctx := context.Background()

	item := domain.Item{
		ID:         uuid.New(),
		WishlistID: wishlistID,
		Name:       name,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO items (id, wishlist_id, name)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		item.ID, item.WishlistID, item.Name,
	).Scan(&item.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}

	return item
}

// SeedGifter creates a gifter with a unique name and no email.
func SeedGifter(t *testing.T, pool *pgxpool.Pool) domain.Gifter {
	t.Helper()
	ctx := context.Background()

	g := domain.Gifter{
		ID:   uuid.New(),
		Name: "Gifter " + uniqueSuffix(),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO gifters (id, name, email)
		 VALUES ($1, $2, NULL)
		 RETURNING created_at`,
		g.ID, g.Name,
	).Scan(&g.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedGifter: %v", err)
	}

	return g
}
