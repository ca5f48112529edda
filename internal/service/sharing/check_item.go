package sharing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CheckItemAvailable reports whether an item under the shared wishlist is
// still unclaimed. The answer is advisory only; Claim re-validates
// atomically, so a "true" here can still lose the race.
func (s *Service) CheckItemAvailable(ctx context.Context, token string, itemID uuid.UUID, viewerID uuid.UUID) (bool, error) {
	w, err := s.resolveWishlist(ctx, token, viewerID)
	if err != nil {
		return false, fmt.Errorf("sharing.CheckItemAvailable: %w", err)
	}

	item, err := s.items.GetByWishlist(ctx, w.ID, itemID)
	if err != nil {
		return false, fmt.Errorf("sharing.CheckItemAvailable: %w", err)
	}

	claimed, err := s.claims.ExistsByItem(ctx, item.ID)
	if err != nil {
		return false, fmt.Errorf("sharing.CheckItemAvailable: %w", err)
	}

	return !claimed, nil
}
