package wishlist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// ThankYouList returns the wishlist's claims grouped per gifter, for writing
// thank-you notes. Before the end date it is unavailable unless preview is
// set; the refusal is ErrForbidden, not an empty list, so clients can tell
// "too early" apart from "nobody claimed anything".
func (s *Service) ThankYouList(ctx context.Context, ownerID, wishlistID uuid.UUID, preview bool) ([]ThankYouGroup, error) {
	w, err := s.wishlists.GetByID(ctx, ownerID, wishlistID)
	if err != nil {
		return nil, fmt.Errorf("wishlist.ThankYouList: %w", err)
	}

	if !domain.RevealClaims(w.EndDate, time.Now(), preview) {
		return nil, fmt.Errorf("wishlist.ThankYouList: not available until after the end date: %w", domain.ErrForbidden)
	}

	claims, err := s.claims.ListByWishlist(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("wishlist.ThankYouList: %w", err)
	}

	return groupByGifter(claims), nil
}

// groupByGifter folds an already gifter-ordered claim list into one group per
// gifter identity.
func groupByGifter(claims []domain.ClaimWithGifter) []ThankYouGroup {
	groups := []ThankYouGroup{}
	for _, c := range claims {
		item := ThankYouItem{Name: c.ItemName, Description: c.ItemDescription}

		if n := len(groups); n > 0 && groups[n-1].GifterName == c.GifterName && ptrEqual(groups[n-1].GifterEmail, c.GifterEmail) {
			groups[n-1].Items = append(groups[n-1].Items, item)
			continue
		}

		groups = append(groups, ThankYouGroup{
			GifterName:  c.GifterName,
			GifterEmail: c.GifterEmail,
			Items:       []ThankYouItem{item},
		})
	}
	return groups
}

// ptrEqual compares two optional strings, treating nil as distinct from "".
func ptrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
