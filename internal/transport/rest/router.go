package rest

import (
	"net/http"

	"github.com/heartmarshall/giftwish-backend/internal/transport/middleware"
)

// Handlers bundles the REST handlers the router wires up.
type Handlers struct {
	Auth     *AuthHandler
	Wishlist *WishlistHandler
	Shared   *SharedHandler
	Health   *HealthHandler
}

// NewRouter builds the route table. Owner routes stack RequireAuth on top of
// the caller's middleware chain; shared routes stay anonymous-friendly.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Probes.
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	// Accounts.
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.Handle("GET /api/auth/me", middleware.RequireAuth(http.HandlerFunc(h.Auth.Me)))

	// Owner wishlist management.
	owned := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(fn)
	}
	mux.Handle("GET /api/wishlists", owned(h.Wishlist.List))
	mux.Handle("POST /api/wishlists", owned(h.Wishlist.Create))
	mux.Handle("GET /api/wishlists/{id}", owned(h.Wishlist.Get))
	mux.Handle("PATCH /api/wishlists/{id}", owned(h.Wishlist.Update))
	mux.Handle("DELETE /api/wishlists/{id}", owned(h.Wishlist.Delete))
	mux.Handle("POST /api/wishlists/{id}/items", owned(h.Wishlist.AddItem))
	mux.Handle("GET /api/wishlists/{id}/thanks", owned(h.Wishlist.ThankYou))
	mux.Handle("PATCH /api/items/{id}", owned(h.Wishlist.UpdateItem))
	mux.Handle("DELETE /api/items/{id}", owned(h.Wishlist.DeleteItem))

	// Gifter share-token access.
	mux.HandleFunc("GET /api/shared/{token}", h.Shared.Get)
	mux.HandleFunc("GET /api/shared/{token}/items/{itemId}/available", h.Shared.CheckItem)
	mux.HandleFunc("POST /api/shared/{token}/items/{itemId}/claim", h.Shared.Claim)

	return mux
}
