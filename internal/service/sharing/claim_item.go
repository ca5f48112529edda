package sharing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// Claim reserves an item for a gifter. Preconditions are checked in order:
// input, wishlist existence, owner rejection, end date, item existence.
// The reservation itself is a single atomic insert; when two gifters race,
// the losing one gets ErrConflict no matter how the checks interleaved.
func (s *Service) Claim(ctx context.Context, token string, itemID uuid.UUID, viewerID uuid.UUID, input ClaimInput) (*ClaimResult, error) {
	input.GifterName = strings.TrimSpace(input.GifterName)
	input.GifterEmail = domain.NormalizeGifterEmail(input.GifterEmail)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.resolveWishlist(ctx, token, viewerID)
	if err != nil {
		return nil, fmt.Errorf("sharing.Claim: %w", err)
	}

	if domain.PastEndDate(w.EndDate, time.Now()) {
		return nil, fmt.Errorf("sharing.Claim: wishlist ended: %w", domain.ErrExpired)
	}

	item, err := s.items.GetByWishlist(ctx, w.ID, itemID)
	if err != nil {
		return nil, fmt.Errorf("sharing.Claim: %w", err)
	}

	var result ClaimResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		g, err := s.getOrCreateGifter(txCtx, input.GifterName, input.GifterEmail)
		if err != nil {
			return fmt.Errorf("resolve gifter: %w", err)
		}

		c, err := s.claims.Insert(txCtx, item.ID, g.ID)
		if err != nil {
			return err
		}

		result = ClaimResult{Claim: c, Gifter: g}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("sharing.Claim: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("sharing.Claim: %w", err)
	}

	s.log.InfoContext(ctx, "item claimed",
		slog.String("item_id", item.ID.String()),
		slog.String("gifter_id", result.Gifter.ID.String()))

	return &result, nil
}

// getOrCreateGifter resolves the exact (name, email) identity, creating it on
// first use. A create that loses a concurrent race falls back to the read.
func (s *Service) getOrCreateGifter(ctx context.Context, name string, email *string) (*domain.Gifter, error) {
	g, err := s.gifters.GetByNameEmail(ctx, name, email)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	g, err = s.gifters.Create(ctx, &domain.Gifter{Name: name, Email: email})
	if err == nil {
		return g, nil
	}
	if errors.Is(err, domain.ErrAlreadyExists) {
		return s.gifters.GetByNameEmail(ctx, name, email)
	}
	return nil, err
}
