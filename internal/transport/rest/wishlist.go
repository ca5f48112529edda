package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
	"github.com/heartmarshall/giftwish-backend/internal/service/wishlist"
	"github.com/heartmarshall/giftwish-backend/pkg/ctxutil"
)

// wishlistService defines the minimal interface needed by WishlistHandler.
type wishlistService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Wishlist, error)
	Create(ctx context.Context, ownerID uuid.UUID, input wishlist.CreateWishlistInput) (*domain.Wishlist, error)
	Get(ctx context.Context, ownerID, wishlistID uuid.UUID, preview bool) (*wishlist.OwnerView, error)
	Update(ctx context.Context, ownerID, wishlistID uuid.UUID, input wishlist.UpdateWishlistInput) (*domain.Wishlist, error)
	Delete(ctx context.Context, ownerID, wishlistID uuid.UUID) error
	AddItem(ctx context.Context, ownerID, wishlistID uuid.UUID, input wishlist.AddItemInput) (*domain.Item, error)
	UpdateItem(ctx context.Context, ownerID, itemID uuid.UUID, input wishlist.UpdateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, ownerID, itemID uuid.UUID) error
	ThankYouList(ctx context.Context, ownerID, wishlistID uuid.UUID, preview bool) ([]wishlist.ThankYouGroup, error)
}

// WishlistHandler serves owner-facing wishlist REST endpoints. All routes
// require authentication; the recipient ID comes from the request context.
type WishlistHandler struct {
	svc wishlistService
	log *slog.Logger
}

// NewWishlistHandler creates a WishlistHandler.
func NewWishlistHandler(svc wishlistService, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{svc: svc, log: logger.With("handler", "wishlist")}
}

// dateOnly marshals a wishlist end date as "2006-01-02".
type dateOnly struct {
	time.Time
}

func (d dateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d *dateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type createWishlistRequest struct {
	Title   string    `json:"title"`
	EndDate *dateOnly `json:"endDate"`
}

type updateWishlistRequest struct {
	Title   *string   `json:"title"`
	EndDate *dateOnly `json:"endDate"`
}

type itemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

type updateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

type wishlistResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	ShareToken string    `json:"shareToken"`
	EndDate    dateOnly  `json:"endDate"`
	CreatedAt  time.Time `json:"createdAt"`
}

type itemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Link        *string   `json:"link,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ownerItemResponse struct {
	itemResponse
	Claim *claimResponse `json:"claim,omitempty"`
}

type claimResponse struct {
	GifterName  string    `json:"gifterName"`
	GifterEmail *string   `json:"gifterEmail,omitempty"`
	ClaimedAt   time.Time `json:"claimedAt"`
}

type ownerViewResponse struct {
	wishlistResponse
	Items       []ownerItemResponse `json:"items"`
	PastEndDate bool                `json:"pastEndDate"`
	Revealed    bool                `json:"revealed"`
}

type thankYouGroupResponse struct {
	GifterName  string                 `json:"gifterName"`
	GifterEmail *string                `json:"gifterEmail,omitempty"`
	Items       []thankYouItemResponse `json:"items"`
}

type thankYouItemResponse struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// ownerID pulls the authenticated recipient out of the context. The auth
// middleware guarantees presence on these routes; the check is a backstop.
func ownerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := ctxutil.RecipientIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return id, true
}

func previewFlag(r *http.Request) bool {
	return r.URL.Query().Get("preview") == "true"
}

// List handles GET /api/wishlists.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	lists, err := h.svc.List(r.Context(), owner)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]wishlistResponse, len(lists))
	for i, l := range lists {
		out[i] = toWishlistResponse(l)
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/wishlists.
func (h *WishlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req createWishlistRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := wishlist.CreateWishlistInput{Title: req.Title}
	if req.EndDate != nil {
		input.EndDate = &req.EndDate.Time
	}

	created, err := h.svc.Create(r.Context(), owner, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWishlistResponse(created))
}

// Get handles GET /api/wishlists/{id}. The optional ?preview=true query
// reveals claims to the owner before the end date.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	wishlistID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	view, err := h.svc.Get(r.Context(), owner, wishlistID, previewFlag(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toOwnerViewResponse(view))
}

// Update handles PATCH /api/wishlists/{id}.
func (h *WishlistHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	wishlistID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateWishlistRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := wishlist.UpdateWishlistInput{Title: req.Title}
	if req.EndDate != nil {
		input.EndDate = &req.EndDate.Time
	}

	updated, err := h.svc.Update(r.Context(), owner, wishlistID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWishlistResponse(updated))
}

// Delete handles DELETE /api/wishlists/{id}.
func (h *WishlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	wishlistID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), owner, wishlistID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /api/wishlists/{id}/items.
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	wishlistID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req itemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.svc.AddItem(r.Context(), owner, wishlistID, wishlist.AddItemInput{
		Name:        req.Name,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(*created))
}

// UpdateItem handles PATCH /api/items/{id}.
func (h *WishlistHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateItem(r.Context(), owner, itemID, wishlist.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(*updated))
}

// DeleteItem handles DELETE /api/items/{id}.
func (h *WishlistHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(r.Context(), owner, itemID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ThankYou handles GET /api/wishlists/{id}/thanks.
func (h *WishlistHandler) ThankYou(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	wishlistID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	groups, err := h.svc.ThankYouList(r.Context(), owner, wishlistID, previewFlag(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]thankYouGroupResponse, len(groups))
	for i, g := range groups {
		items := make([]thankYouItemResponse, len(g.Items))
		for j, it := range g.Items {
			items[j] = thankYouItemResponse{Name: it.Name, Description: it.Description}
		}
		out[i] = thankYouGroupResponse{
			GifterName:  g.GifterName,
			GifterEmail: g.GifterEmail,
			Items:       items,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func toWishlistResponse(l *domain.Wishlist) wishlistResponse {
	return wishlistResponse{
		ID:         l.ID.String(),
		Title:      l.Title,
		ShareToken: l.ShareToken,
		EndDate:    dateOnly{l.EndDate},
		CreatedAt:  l.CreatedAt,
	}
}

func toItemResponse(item domain.Item) itemResponse {
	return itemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Link:        item.Link,
		CreatedAt:   item.CreatedAt,
	}
}

func toOwnerViewResponse(view *wishlist.OwnerView) ownerViewResponse {
	items := make([]ownerItemResponse, len(view.Items))
	for i, it := range view.Items {
		items[i] = ownerItemResponse{itemResponse: toItemResponse(it.Item)}
		if it.Claim != nil {
			items[i].Claim = &claimResponse{
				GifterName:  it.Claim.GifterName,
				GifterEmail: it.Claim.GifterEmail,
				ClaimedAt:   it.Claim.ClaimedAt,
			}
		}
	}
	return ownerViewResponse{
		wishlistResponse: toWishlistResponse(view.Wishlist),
		Items:            items,
		PastEndDate:      view.PastEndDate,
		Revealed:         view.Revealed,
	}
}
