package wishlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// DeleteItem removes an item. Any claim on it cascade-deletes, silently
// releasing the gifter's reservation.
func (s *Service) DeleteItem(ctx context.Context, ownerID, itemID uuid.UUID) error {
	if err := s.items.Delete(ctx, ownerID, itemID); err != nil {
		return fmt.Errorf("wishlist.DeleteItem: %w", err)
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("item_id", itemID.String()))

	return nil
}
