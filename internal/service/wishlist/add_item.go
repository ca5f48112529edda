package wishlist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// AddItem appends an item to a wishlist the recipient owns.
func (s *Service) AddItem(ctx context.Context, ownerID, wishlistID uuid.UUID, input AddItemInput) (*domain.Item, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Ownership check doubles as the existence check.
	w, err := s.wishlists.GetByID(ctx, ownerID, wishlistID)
	if err != nil {
		return nil, fmt.Errorf("wishlist.AddItem: %w", err)
	}

	count, err := s.items.CountByWishlist(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("wishlist.AddItem: %w", err)
	}
	if count >= s.cfg.MaxItemsPerWishlist {
		return nil, domain.NewValidationError("items",
			fmt.Sprintf("limit of %d items reached", s.cfg.MaxItemsPerWishlist))
	}

	created, err := s.items.Create(ctx, &domain.Item{
		WishlistID:  w.ID,
		Name:        input.Name,
		Description: emptyToNil(input.Description),
		Link:        emptyToNil(input.Link),
	})
	if err != nil {
		return nil, fmt.Errorf("wishlist.AddItem: %w", err)
	}

	s.log.InfoContext(ctx, "item added",
		slog.String("wishlist_id", w.ID.String()),
		slog.String("item_id", created.ID.String()))

	return created, nil
}

// emptyToNil normalizes an empty optional string to nil before storage.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
