package wishlist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// Get returns the owner's view of a wishlist. Claim details on items stay
// hidden until the end date has passed, unless preview is set.
func (s *Service) Get(ctx context.Context, ownerID, wishlistID uuid.UUID, preview bool) (*OwnerView, error) {
	w, err := s.wishlists.GetByID(ctx, ownerID, wishlistID)
	if err != nil {
		return nil, fmt.Errorf("wishlist.Get: %w", err)
	}

	items, err := s.items.ListByWishlist(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("wishlist.Get: %w", err)
	}

	now := time.Now()
	reveal := domain.RevealClaims(w.EndDate, now, preview)

	// Claims are only fetched when they may be shown; before the reveal the
	// owner's view must not depend on claim state at all.
	claims := map[uuid.UUID]domain.ClaimWithGifter{}
	if reveal {
		claims, err = s.claimsByItem(ctx, w.ID)
		if err != nil {
			return nil, fmt.Errorf("wishlist.Get: %w", err)
		}
	}

	return &OwnerView{
		Wishlist:    w,
		Items:       domain.ProjectOwner(items, claims, reveal),
		PastEndDate: domain.PastEndDate(w.EndDate, now),
		Revealed:    reveal,
	}, nil
}
