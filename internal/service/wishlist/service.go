// Package wishlist implements owner-facing wishlist and item operations:
// CRUD, the owner's gated view of claims, and the post-deadline thank-you
// summary.
package wishlist

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/config"
	"github.com/heartmarshall/giftwish-backend/internal/domain"
	"github.com/heartmarshall/giftwish-backend/internal/token"
)

// wishlistRepo defines the wishlist repository interface needed by this service.
type wishlistRepo interface {
	GetByID(ctx context.Context, ownerID, wishlistID uuid.UUID) (*domain.Wishlist, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Wishlist, error)
	TokenExists(ctx context.Context, token string) (bool, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	Create(ctx context.Context, w *domain.Wishlist) (*domain.Wishlist, error)
	Update(ctx context.Context, ownerID, wishlistID uuid.UUID, params domain.WishlistUpdateParams) (*domain.Wishlist, error)
	Delete(ctx context.Context, ownerID, wishlistID uuid.UUID) error
}

// itemRepo defines the item repository interface needed by this service.
type itemRepo interface {
	GetOwned(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error)
	ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]domain.Item, error)
	CountByWishlist(ctx context.Context, wishlistID uuid.UUID) (int, error)
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, ownerID, itemID uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error)
	Delete(ctx context.Context, ownerID, itemID uuid.UUID) error
}

// claimRepo defines the claim repository interface needed by this service.
type claimRepo interface {
	ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]domain.ClaimWithGifter, error)
}

// tokenGenerator defines the share token generation interface.
type tokenGenerator interface {
	GenerateUnique(ctx context.Context, taken token.TakenFunc) (string, error)
}

// Service implements owner-facing wishlist operations.
type Service struct {
	log       *slog.Logger
	wishlists wishlistRepo
	items     itemRepo
	claims    claimRepo
	tokens    tokenGenerator
	cfg       config.WishlistConfig
}

// NewService creates a new wishlist service instance.
func NewService(
	logger *slog.Logger,
	wishlists wishlistRepo,
	items itemRepo,
	claims claimRepo,
	tokens tokenGenerator,
	cfg config.WishlistConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "wishlist"),
		wishlists: wishlists,
		items:     items,
		claims:    claims,
		tokens:    tokens,
		cfg:       cfg,
	}
}

// claimsByItem loads a wishlist's claims keyed by item ID.
func (s *Service) claimsByItem(ctx context.Context, wishlistID uuid.UUID) (map[uuid.UUID]domain.ClaimWithGifter, error) {
	list, err := s.claims.ListByWishlist(ctx, wishlistID)
	if err != nil {
		return nil, err
	}
	m := make(map[uuid.UUID]domain.ClaimWithGifter, len(list))
	for _, c := range list {
		m[c.ItemID] = c
	}
	return m, nil
}
