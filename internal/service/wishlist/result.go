package wishlist

import "github.com/heartmarshall/giftwish-backend/internal/domain"

// OwnerView is the owner's projection of a wishlist. Items carry claim
// details only once Revealed is true.
type OwnerView struct {
	Wishlist    *domain.Wishlist
	Items       []domain.OwnerItem
	PastEndDate bool
	Revealed    bool
}

// ThankYouItem is one gifted item in the thank-you summary.
type ThankYouItem struct {
	Name        string
	Description *string
}

// ThankYouGroup collects everything one gifter claimed, for writing a single
// thank-you note per person.
type ThankYouGroup struct {
	GifterName  string
	GifterEmail *string
	Items       []ThankYouItem
}
