package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/service/sharing"
	"github.com/heartmarshall/giftwish-backend/pkg/ctxutil"
)

// sharingService defines the minimal interface needed by SharedHandler.
type sharingService interface {
	GetShared(ctx context.Context, token string, viewerID uuid.UUID) (*sharing.SharedView, error)
	CheckItemAvailable(ctx context.Context, token string, itemID uuid.UUID, viewerID uuid.UUID) (bool, error)
	Claim(ctx context.Context, token string, itemID uuid.UUID, viewerID uuid.UUID, input sharing.ClaimInput) (*sharing.ClaimResult, error)
}

// SharedHandler serves the gifter-facing share-token endpoints. Routes are
// public; an authenticated session only matters for rejecting the owner.
type SharedHandler struct {
	svc sharingService
	log *slog.Logger
}

// NewSharedHandler creates a SharedHandler.
func NewSharedHandler(svc sharingService, logger *slog.Logger) *SharedHandler {
	return &SharedHandler{svc: svc, log: logger.With("handler", "shared")}
}

type claimRequest struct {
	GifterName  string  `json:"gifterName"`
	GifterEmail *string `json:"gifterEmail"`
}

type sharedViewResponse struct {
	Title         string               `json:"title"`
	RecipientName string               `json:"recipientName"`
	EndDate       dateOnly             `json:"endDate"`
	PastEndDate   bool                 `json:"pastEndDate"`
	Items         []gifterItemResponse `json:"items"`
	TotalItems    int                  `json:"totalItems"`
	ClaimedCount  int                  `json:"claimedCount"`
}

type gifterItemResponse struct {
	itemResponse
	Claimed        bool    `json:"claimed"`
	ClaimedByName  string  `json:"claimedByName,omitempty"`
	ClaimedByEmail *string `json:"claimedByEmail,omitempty"`
}

type availabilityResponse struct {
	Available bool `json:"available"`
}

type claimResultResponse struct {
	ItemID     string    `json:"itemId"`
	GifterName string    `json:"gifterName"`
	ClaimedAt  time.Time `json:"claimedAt"`
}

// viewerID returns the authenticated recipient ID, or uuid.Nil for
// anonymous visitors. Share routes never require a session.
func viewerID(r *http.Request) uuid.UUID {
	id, _ := ctxutil.RecipientIDFromCtx(r.Context())
	return id
}

// Get handles GET /api/shared/{token}.
func (h *SharedHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetShared(r.Context(), r.PathValue("token"), viewerID(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]gifterItemResponse, len(view.Items))
	for i, it := range view.Items {
		items[i] = gifterItemResponse{
			itemResponse:   toItemResponse(it.Item),
			Claimed:        it.Claimed,
			ClaimedByName:  it.ClaimedByName,
			ClaimedByEmail: it.ClaimedByEmail,
		}
	}

	writeJSON(w, http.StatusOK, sharedViewResponse{
		Title:         view.Title,
		RecipientName: view.RecipientName,
		EndDate:       dateOnly{view.EndDate},
		PastEndDate:   view.PastEndDate,
		Items:         items,
		TotalItems:    view.TotalItems,
		ClaimedCount:  view.ClaimedCount,
	})
}

// CheckItem handles GET /api/shared/{token}/items/{itemId}/available.
func (h *SharedHandler) CheckItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "itemId")
	if !ok {
		return
	}

	available, err := h.svc.CheckItemAvailable(r.Context(), r.PathValue("token"), itemID, viewerID(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, availabilityResponse{Available: available})
}

// Claim handles POST /api/shared/{token}/items/{itemId}/claim.
func (h *SharedHandler) Claim(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "itemId")
	if !ok {
		return
	}

	var req claimRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Claim(r.Context(), r.PathValue("token"), itemID, viewerID(r), sharing.ClaimInput{
		GifterName:  req.GifterName,
		GifterEmail: req.GifterEmail,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, claimResultResponse{
		ItemID:     result.Claim.ItemID.String(),
		GifterName: result.Gifter.Name,
		ClaimedAt:  result.Claim.ClaimedAt,
	})
}
