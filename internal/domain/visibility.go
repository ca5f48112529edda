package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visibility rules.
//
// One predicate, RevealClaims, governs two independent projections of the same
// claim data. Before the deadline the owner is blind to claims while gifters
// see full claim state (so they can coordinate and avoid double-gifting).
// After the deadline the roles flip: gifter browsing closes and the owner
// regains visibility as a thank-you summary.

// EndOfDay returns 23:59:59 server-local time on d's calendar day.
// An item is still concealable through the entirety of the end date.
func EndOfDay(d time.Time) time.Time {
	year, month, day := d.Date()
	return time.Date(year, month, day, 23, 59, 59, 0, time.Local)
}

// PastEndDate reports whether now is strictly after the end of endDate's day.
func PastEndDate(endDate, now time.Time) bool {
	return now.After(EndOfDay(endDate))
}

// RevealClaims reports whether claim identities may be revealed to the owner.
// preview is the owner's explicit override for testing the thank-you view early.
func RevealClaims(endDate, now time.Time, preview bool) bool {
	return PastEndDate(endDate, now) || preview
}

// OwnerItem is the owner projection of an item. Claim stays nil until
// RevealClaims is true, regardless of whether a claim exists.
type OwnerItem struct {
	Item
	Claim *ClaimWithGifter
}

// GifterItem is the gifter projection of an item. Claim state is always
// populated; concealment from gifters is not the same as concealment from
// the owner.
type GifterItem struct {
	Item
	Claimed        bool
	ClaimedByName  string
	ClaimedByEmail *string
}

// ProjectOwner builds the owner view of items. claims is keyed by item ID.
func ProjectOwner(items []Item, claims map[uuid.UUID]ClaimWithGifter, reveal bool) []OwnerItem {
	result := make([]OwnerItem, len(items))
	for i, item := range items {
		result[i] = OwnerItem{Item: item}
		if !reveal {
			continue
		}
		if c, ok := claims[item.ID]; ok {
			claim := c
			result[i].Claim = &claim
		}
	}
	return result
}

// ProjectGifter builds the gifter view of items. claims is keyed by item ID.
func ProjectGifter(items []Item, claims map[uuid.UUID]ClaimWithGifter) []GifterItem {
	result := make([]GifterItem, len(items))
	for i, item := range items {
		result[i] = GifterItem{Item: item}
		if c, ok := claims[item.ID]; ok {
			result[i].Claimed = true
			result[i].ClaimedByName = c.GifterName
			result[i].ClaimedByEmail = c.GifterEmail
		}
	}
	return result
}

// NormalizeGifterEmail maps an empty or missing email to nil so that NULL is
// the only "absent" representation used for gifter matching.
func NormalizeGifterEmail(email *string) *string {
	if email == nil || *email == "" {
		return nil
	}
	return email
}
