package sharing

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/wishlist"
	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// wishlistRepoMock is a hand-written mock of wishlistRepo.
type wishlistRepoMock struct {
	GetByShareTokenFunc func(ctx context.Context, token string) (*wishlist.WithRecipient, error)
}

func (m *wishlistRepoMock) GetByShareToken(ctx context.Context, token string) (*wishlist.WithRecipient, error) {
	return m.GetByShareTokenFunc(ctx, token)
}

// itemRepoMock is a hand-written mock of itemRepo.
type itemRepoMock struct {
	ListByWishlistFunc func(ctx context.Context, wishlistID uuid.UUID) ([]domain.Item, error)
	GetByWishlistFunc  func(ctx context.Context, wishlistID, itemID uuid.UUID) (*domain.Item, error)
}

func (m *itemRepoMock) ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]domain.Item, error) {
	return m.ListByWishlistFunc(ctx, wishlistID)
}

func (m *itemRepoMock) GetByWishlist(ctx context.Context, wishlistID, itemID uuid.UUID) (*domain.Item, error) {
	return m.GetByWishlistFunc(ctx, wishlistID, itemID)
}

// claimRepoMock is a hand-written mock of claimRepo.
type claimRepoMock struct {
	InsertFunc         func(ctx context.Context, itemID, gifterID uuid.UUID) (*domain.Claim, error)
	ExistsByItemFunc   func(ctx context.Context, itemID uuid.UUID) (bool, error)
	ListByWishlistFunc func(ctx context.Context, wishlistID uuid.UUID) ([]domain.ClaimWithGifter, error)
}

func (m *claimRepoMock) Insert(ctx context.Context, itemID, gifterID uuid.UUID) (*domain.Claim, error) {
	return m.InsertFunc(ctx, itemID, gifterID)
}

func (m *claimRepoMock) ExistsByItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	return m.ExistsByItemFunc(ctx, itemID)
}

func (m *claimRepoMock) ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]domain.ClaimWithGifter, error) {
	return m.ListByWishlistFunc(ctx, wishlistID)
}

// gifterRepoMock is a hand-written mock of gifterRepo.
type gifterRepoMock struct {
	GetByNameEmailFunc func(ctx context.Context, name string, email *string) (*domain.Gifter, error)
	CreateFunc         func(ctx context.Context, g *domain.Gifter) (*domain.Gifter, error)
}

func (m *gifterRepoMock) GetByNameEmail(ctx context.Context, name string, email *string) (*domain.Gifter, error) {
	return m.GetByNameEmailFunc(ctx, name, email)
}

func (m *gifterRepoMock) Create(ctx context.Context, g *domain.Gifter) (*domain.Gifter, error) {
	return m.CreateFunc(ctx, g)
}

// txManagerMock is a hand-written mock of txManager.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTxFunc(ctx, fn)
}

// passthroughTx runs the function without a real transaction.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}
