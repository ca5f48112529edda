// Package auth implements recipient account operations: registration,
// login, and session lookup.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// recipientRepo defines the recipient repository interface needed by auth service.
type recipientRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipient, error)
	GetByEmail(ctx context.Context, email string) (*domain.Recipient, error)
	Create(ctx context.Context, rec *domain.Recipient) (*domain.Recipient, error)
}

// passwordHasher defines the password hashing interface needed by auth service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// jwtManager defines the session token interface needed by auth service.
type jwtManager interface {
	GenerateToken(recipientID uuid.UUID, name, email string) (string, error)
	ValidateToken(token string) (uuid.UUID, error)
}

// Service implements auth operations.
type Service struct {
	log        *slog.Logger
	recipients recipientRepo
	hasher     passwordHasher
	jwt        jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, recipients recipientRepo, hasher passwordHasher, jwt jwtManager) *Service {
	return &Service{
		log:        logger.With("service", "auth"),
		recipients: recipients,
		hasher:     hasher,
		jwt:        jwt,
	}
}

// ValidateToken resolves a session token to the recipient ID it was issued for.
// Any parse or signature failure maps to domain.ErrUnauthorized.
func (s *Service) ValidateToken(token string) (uuid.UUID, error) {
	id, err := s.jwt.ValidateToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
