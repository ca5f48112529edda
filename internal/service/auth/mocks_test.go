package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// recipientRepoMock is a hand-written mock of recipientRepo.
type recipientRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Recipient, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Recipient, error)
	CreateFunc     func(ctx context.Context, rec *domain.Recipient) (*domain.Recipient, error)
}

func (m *recipientRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipient, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *recipientRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Recipient, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *recipientRepoMock) Create(ctx context.Context, rec *domain.Recipient) (*domain.Recipient, error) {
	return m.CreateFunc(ctx, rec)
}

// hasherMock is a hand-written mock of passwordHasher.
type hasherMock struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hash, password string) bool
}

func (m *hasherMock) Hash(password string) (string, error) { return m.HashFunc(password) }
func (m *hasherMock) Compare(hash, password string) bool   { return m.CompareFunc(hash, password) }

// jwtManagerMock is a hand-written mock of jwtManager.
type jwtManagerMock struct {
	GenerateTokenFunc func(recipientID uuid.UUID, name, email string) (string, error)
	ValidateTokenFunc func(token string) (uuid.UUID, error)
}

func (m *jwtManagerMock) GenerateToken(recipientID uuid.UUID, name, email string) (string, error) {
	return m.GenerateTokenFunc(recipientID, name, email)
}

func (m *jwtManagerMock) ValidateToken(token string) (uuid.UUID, error) {
	return m.ValidateTokenFunc(token)
}
