package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// Me returns the account for an authenticated recipient ID.
// A valid token whose account has since been deleted maps to ErrUnauthorized.
func (s *Service) Me(ctx context.Context, recipientID uuid.UUID) (*domain.Recipient, error) {
	rec, err := s.recipients.GetByID(ctx, recipientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.Me: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return rec, nil
}
