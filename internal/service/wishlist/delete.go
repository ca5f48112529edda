package wishlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes a wishlist with all its items and their claims.
func (s *Service) Delete(ctx context.Context, ownerID, wishlistID uuid.UUID) error {
	if err := s.wishlists.Delete(ctx, ownerID, wishlistID); err != nil {
		return fmt.Errorf("wishlist.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "wishlist deleted",
		slog.String("wishlist_id", wishlistID.String()))

	return nil
}
