package wishlist

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
	"github.com/heartmarshall/giftwish-backend/internal/token"
)

// wishlistRepoMock is a hand-written mock of wishlistRepo.
type wishlistRepoMock struct {
	GetByIDFunc      func(ctx context.Context, ownerID, wishlistID uuid.UUID) (*domain.Wishlist, error)
	ListByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Wishlist, error)
	TokenExistsFunc  func(ctx context.Context, token string) (bool, error)
	CountByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) (int, error)
	CreateFunc       func(ctx context.Context, w *domain.Wishlist) (*domain.Wishlist, error)
	UpdateFunc       func(ctx context.Context, ownerID, wishlistID uuid.UUID, params domain.WishlistUpdateParams) (*domain.Wishlist, error)
	DeleteFunc       func(ctx context.Context, ownerID, wishlistID uuid.UUID) error
}

func (m *wishlistRepoMock) GetByID(ctx context.Context, ownerID, wishlistID uuid.UUID) (*domain.Wishlist, error) {
	return m.GetByIDFunc(ctx, ownerID, wishlistID)
}

func (m *wishlistRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Wishlist, error) {
	return m.ListByOwnerFunc(ctx, ownerID)
}

func (m *wishlistRepoMock) TokenExists(ctx context.Context, token string) (bool, error) {
	return m.TokenExistsFunc(ctx, token)
}

func (m *wishlistRepoMock) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return m.CountByOwnerFunc(ctx, ownerID)
}

func (m *wishlistRepoMock) Create(ctx context.Context, w *domain.Wishlist) (*domain.Wishlist, error) {
	return m.CreateFunc(ctx, w)
}

func (m *wishlistRepoMock) Update(ctx context.Context, ownerID, wishlistID uuid.UUID, params domain.WishlistUpdateParams) (*domain.Wishlist, error) {
	return m.UpdateFunc(ctx, ownerID, wishlistID, params)
}

func (m *wishlistRepoMock) Delete(ctx context.Context, ownerID, wishlistID uuid.UUID) error {
	return m.DeleteFunc(ctx, ownerID, wishlistID)
}

// itemRepoMock is a hand-written mock of itemRepo.
type itemRepoMock struct {
	GetOwnedFunc        func(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error)
	ListByWishlistFunc  func(ctx context.Context, wishlistID uuid.UUID) ([]domain.Item, error)
	CountByWishlistFunc func(ctx context.Context, wishlistID uuid.UUID) (int, error)
	CreateFunc          func(ctx context.Context, item *domain.Item) (*domain.Item, error)
	UpdateFunc          func(ctx context.Context, ownerID, itemID uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error)
	DeleteFunc          func(ctx context.Context, ownerID, itemID uuid.UUID) error
}

func (m *itemRepoMock) GetOwned(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error) {
	return m.GetOwnedFunc(ctx, ownerID, itemID)
}

func (m *itemRepoMock) ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]domain.Item, error) {
	return m.ListByWishlistFunc(ctx, wishlistID)
}

func (m *itemRepoMock) CountByWishlist(ctx context.Context, wishlistID uuid.UUID) (int, error) {
	return m.CountByWishlistFunc(ctx, wishlistID)
}

func (m *itemRepoMock) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	return m.CreateFunc(ctx, item)
}

func (m *itemRepoMock) Update(ctx context.Context, ownerID, itemID uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error) {
	return m.UpdateFunc(ctx, ownerID, itemID, params)
}

func (m *itemRepoMock) Delete(ctx context.Context, ownerID, itemID uuid.UUID) error {
	return m.DeleteFunc(ctx, ownerID, itemID)
}

// claimRepoMock is a hand-written mock of claimRepo.
type claimRepoMock struct {
	ListByWishlistFunc func(ctx context.Context, wishlistID uuid.UUID) ([]domain.ClaimWithGifter, error)
}

func (m *claimRepoMock) ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]domain.ClaimWithGifter, error) {
	return m.ListByWishlistFunc(ctx, wishlistID)
}

// tokenGeneratorMock is a hand-written mock of tokenGenerator.
type tokenGeneratorMock struct {
	GenerateUniqueFunc func(ctx context.Context, taken token.TakenFunc) (string, error)
}

func (m *tokenGeneratorMock) GenerateUnique(ctx context.Context, taken token.TakenFunc) (string, error) {
	return m.GenerateUniqueFunc(ctx, taken)
}
