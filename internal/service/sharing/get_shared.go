package sharing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// GetShared returns the gifter view of a wishlist identified by share token.
// viewerID is uuid.Nil for anonymous visitors; the owner gets ErrForbidden.
// After the end date item browsing closes: the view carries counts only.
func (s *Service) GetShared(ctx context.Context, token string, viewerID uuid.UUID) (*SharedView, error) {
	w, err := s.resolveWishlist(ctx, token, viewerID)
	if err != nil {
		return nil, fmt.Errorf("sharing.GetShared: %w", err)
	}

	items, err := s.items.ListByWishlist(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("sharing.GetShared: %w", err)
	}

	claims, err := s.claims.ListByWishlist(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("sharing.GetShared: %w", err)
	}

	byItem := make(map[uuid.UUID]domain.ClaimWithGifter, len(claims))
	for _, c := range claims {
		byItem[c.ItemID] = c
	}

	view := &SharedView{
		Title:         w.Title,
		RecipientName: w.RecipientName,
		EndDate:       w.EndDate,
		PastEndDate:   domain.PastEndDate(w.EndDate, time.Now()),
		TotalItems:    len(items),
		ClaimedCount:  len(claims),
	}

	if view.PastEndDate {
		view.Items = []domain.GifterItem{}
		return view, nil
	}

	view.Items = domain.ProjectGifter(items, byItem)
	return view, nil
}
