package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gifter is an anonymous claimant identity, matched by the exact (name, email)
// pair across visits. Email is nil when the gifter gave none; an empty-string
// email is normalized to nil before matching, so NULL is the single canonical
// "absent" representation in storage.
type Gifter struct {
	ID        uuid.UUID
	Name      string
	Email     *string
	CreatedAt time.Time
}

// Claim binds exactly one item to exactly one gifter. At most one claim exists
// per item; the claims(item_id) unique index is the source of that invariant.
// Claims are never updated and never deleted except by item cascade.
type Claim struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	GifterID  uuid.UUID
	ClaimedAt time.Time
}

// ClaimWithGifter is the read model of a claim joined with its gifter identity
// and the claimed item, as returned by the wishlist-wide claims query.
type ClaimWithGifter struct {
	Claim
	GifterName      string
	GifterEmail     *string
	ItemName        string
	ItemDescription *string
}
