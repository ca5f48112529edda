package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// Login authenticates a recipient by email + password.
// Unknown email and wrong password both map to ErrUnauthorized so the
// response does not reveal which accounts exist.
func (s *Service) Login(ctx context.Context, input LoginInput) (*SessionResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.recipients.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	if !s.hasher.Compare(rec.PasswordHash, input.Password) {
		return nil, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
	}

	token, err := s.jwt.GenerateToken(rec.ID, rec.Name, rec.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "recipient logged in",
		slog.String("recipient_id", rec.ID.String()))

	return &SessionResult{Token: token, Recipient: rec}, nil
}
