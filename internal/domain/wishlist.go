package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist is a gift list owned by exactly one recipient. ShareToken is the
// unguessable identifier that grants gifters access; it is unique across all
// wishlists and never reassigned for the lifetime of the wishlist.
type Wishlist struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	Title       string
	ShareToken  string
	// EndDate is a calendar date with no meaningful time component.
	// Only the year/month/day are significant; see EndOfDay.
	EndDate   time.Time
	CreatedAt time.Time
}

// WishlistUpdateParams holds partial-update fields for a wishlist.
// nil means "don't change".
type WishlistUpdateParams struct {
	Title   *string
	EndDate *time.Time
}

// Item is a single wishlist entry. Claims cascade-delete with the item.
type Item struct {
	ID          uuid.UUID
	WishlistID  uuid.UUID
	Name        string
	Description *string
	Link        *string
	CreatedAt   time.Time
}

// ItemUpdateParams holds partial-update fields for an item.
// nil means "don't change"; ptr("") clears an optional field.
type ItemUpdateParams struct {
	Name        *string
	Description *string
	Link        *string
}
