package wishlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// Update modifies a wishlist's title and/or end date. The share token never
// changes. Extending the end date re-conceals claims from the owner.
func (s *Service) Update(ctx context.Context, ownerID, wishlistID uuid.UUID, input UpdateWishlistInput) (*domain.Wishlist, error) {
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		input.Title = &trimmed
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.wishlists.Update(ctx, ownerID, wishlistID, domain.WishlistUpdateParams{
		Title:   input.Title,
		EndDate: input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("wishlist.Update: %w", err)
	}

	return updated, nil
}
