package wishlist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// Create creates a wishlist with a freshly generated unique share token.
// A missing end date defaults to December 25 of the current year.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, input CreateWishlistInput) (*domain.Wishlist, error) {
	input.Title = strings.TrimSpace(input.Title)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.wishlists.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("wishlist.Create: %w", err)
	}
	if count >= s.cfg.MaxWishlistsPerAccount {
		return nil, domain.NewValidationError("wishlists",
			fmt.Sprintf("limit of %d wishlists reached", s.cfg.MaxWishlistsPerAccount))
	}

	shareToken, err := s.tokens.GenerateUnique(ctx, s.wishlists.TokenExists)
	if err != nil {
		return nil, fmt.Errorf("wishlist.Create generate token: %w", err)
	}

	endDate := DefaultEndDate(time.Now())
	if input.EndDate != nil {
		endDate = *input.EndDate
	}

	created, err := s.wishlists.Create(ctx, &domain.Wishlist{
		RecipientID: ownerID,
		Title:       input.Title,
		ShareToken:  shareToken,
		EndDate:     endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("wishlist.Create: %w", err)
	}

	s.log.InfoContext(ctx, "wishlist created",
		slog.String("wishlist_id", created.ID.String()),
		slog.String("share_token", created.ShareToken))

	return created, nil
}
