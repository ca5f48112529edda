// Package sharing implements the gifter-facing operations behind a share
// token: viewing a shared wishlist, checking item availability, and claiming
// items. Gifters are anonymous visitors identified only by the token plus a
// self-reported name and optional email.
package sharing

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/wishlist"
	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// wishlistRepo defines the wishlist repository interface needed by this service.
type wishlistRepo interface {
	GetByShareToken(ctx context.Context, token string) (*wishlist.WithRecipient, error)
}

// itemRepo defines the item repository interface needed by this service.
type itemRepo interface {
	ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]domain.Item, error)
	GetByWishlist(ctx context.Context, wishlistID, itemID uuid.UUID) (*domain.Item, error)
}

// claimRepo defines the claim repository interface needed by this service.
type claimRepo interface {
	Insert(ctx context.Context, itemID, gifterID uuid.UUID) (*domain.Claim, error)
	ExistsByItem(ctx context.Context, itemID uuid.UUID) (bool, error)
	ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]domain.ClaimWithGifter, error)
}

// gifterRepo defines the gifter repository interface needed by this service.
type gifterRepo interface {
	GetByNameEmail(ctx context.Context, name string, email *string) (*domain.Gifter, error)
	Create(ctx context.Context, g *domain.Gifter) (*domain.Gifter, error)
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements share-token operations.
type Service struct {
	log       *slog.Logger
	wishlists wishlistRepo
	items     itemRepo
	claims    claimRepo
	gifters   gifterRepo
	tx        txManager
}

// NewService creates a new sharing service instance.
func NewService(
	logger *slog.Logger,
	wishlists wishlistRepo,
	items itemRepo,
	claims claimRepo,
	gifters gifterRepo,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "sharing"),
		wishlists: wishlists,
		items:     items,
		claims:    claims,
		gifters:   gifters,
		tx:        tx,
	}
}

// resolveWishlist loads a wishlist by share token and rejects the owner.
// viewerID is uuid.Nil for anonymous visitors. The owner must use the owner
// endpoints; letting them browse as a gifter would leak concealed claims.
func (s *Service) resolveWishlist(ctx context.Context, token string, viewerID uuid.UUID) (*wishlist.WithRecipient, error) {
	w, err := s.wishlists.GetByShareToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if viewerID != uuid.Nil && viewerID == w.RecipientID {
		return nil, domain.ErrForbidden
	}
	return w, nil
}
