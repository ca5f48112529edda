package wishlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// List returns all wishlists owned by the recipient, newest first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Wishlist, error) {
	lists, err := s.wishlists.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("wishlist.List: %w", err)
	}
	return lists, nil
}
