package sharing

import (
	"time"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// SharedView is the gifter's projection of a wishlist. After the end date
// Items is empty and PastEndDate is set; the counts still describe the full
// list so the page can show what it was.
type SharedView struct {
	Title         string
	RecipientName string
	EndDate       time.Time
	PastEndDate   bool
	Items         []domain.GifterItem
	TotalItems    int
	ClaimedCount  int
}

// ClaimResult is returned by Claim: the recorded claim plus the resolved
// gifter identity it was attributed to.
type ClaimResult struct {
	Claim  *domain.Claim
	Gifter *domain.Gifter
}
