package wishlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// UpdateItem modifies an item's fields. Claims on the item survive the
// update untouched; only deletion releases a claim.
func (s *Service) UpdateItem(ctx context.Context, ownerID, itemID uuid.UUID, input UpdateItemInput) (*domain.Item, error) {
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		input.Name = &trimmed
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.items.Update(ctx, ownerID, itemID, domain.ItemUpdateParams{
		Name:        input.Name,
		Description: input.Description,
		Link:        input.Link,
	})
	if err != nil {
		return nil, fmt.Errorf("wishlist.UpdateItem: %w", err)
	}

	return updated, nil
}
