//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/giftwish-backend/internal/adapter/postgres"
	claimrepo "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/claim"
	gifterrepo "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/gifter"
	itemrepo "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/item"
	recipientrepo "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/recipient"
	"github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/testhelper"
	wishlistrepo "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/wishlist"
	authpkg "github.com/heartmarshall/giftwish-backend/internal/auth"
	"github.com/heartmarshall/giftwish-backend/internal/config"
	authsvc "github.com/heartmarshall/giftwish-backend/internal/service/auth"
	"github.com/heartmarshall/giftwish-backend/internal/service/sharing"
	wishlistsvc "github.com/heartmarshall/giftwish-backend/internal/service/wishlist"
	"github.com/heartmarshall/giftwish-backend/internal/token"
	"github.com/heartmarshall/giftwish-backend/internal/transport/middleware"
	"github.com/heartmarshall/giftwish-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	recipients := recipientrepo.New(pool)
	wishlists := wishlistrepo.New(pool)
	items := itemrepo.New(pool)
	gifters := gifterrepo.New(pool)
	claims := claimrepo.New(pool)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", time.Hour)
	hasher := authpkg.NewPasswordHasher(4) // minimum cost, tests only
	tokens := token.New()

	authService := authsvc.NewService(logger, recipients, hasher, jwtMgr)
	wishlistService := wishlistsvc.NewService(logger, wishlists, items, claims, tokens, config.WishlistConfig{
		MaxItemsPerWishlist:    200,
		MaxWishlistsPerAccount: 50,
	})
	sharingService := sharing.NewService(logger, wishlists, items, claims, gifters, txm)

	router := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Wishlist: rest.NewWishlistHandler(wishlistService, logger),
		Shared:   rest.NewSharedHandler(sharingService, logger),
		Health:   rest.NewHealthHandler(pool, "test-version"),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// do sends a JSON request and returns status plus decoded body. A nil body
// sends no payload; an empty bearer token sends no Authorization header.
func (ts *testServer) do(t *testing.T, method, path string, body any, bearer string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

var accountSeq int

// registerAccount creates a fresh recipient and returns its bearer token.
func (ts *testServer) registerAccount(t *testing.T, name string) string {
	t.Helper()

	accountSeq++
	email := fmt.Sprintf("%s-%d-%d@example.test", name, accountSeq, time.Now().UnixNano())

	status, body := ts.do(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    email,
		"name":     name,
		"password": "correct horse battery",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	tok, ok := body["token"].(string)
	require.True(t, ok, "expected token in register response: %v", body)
	return tok
}

// createWishlist creates a wishlist and returns its ID and share token.
func (ts *testServer) createWishlist(t *testing.T, bearer, title, endDate string) (id, shareToken string) {
	t.Helper()

	payload := map[string]any{"title": title}
	if endDate != "" {
		payload["endDate"] = endDate
	}
	status, body := ts.do(t, http.MethodPost, "/api/wishlists", payload, bearer)
	require.Equal(t, http.StatusCreated, status, "create wishlist: %v", body)

	id, _ = body["id"].(string)
	shareToken, _ = body["shareToken"].(string)
	require.NotEmpty(t, id)
	require.NotEmpty(t, shareToken)
	return id, shareToken
}

// addItem adds an item to a wishlist and returns its ID.
func (ts *testServer) addItem(t *testing.T, bearer, wishlistID, name string) string {
	t.Helper()

	status, body := ts.do(t, http.MethodPost, "/api/wishlists/"+wishlistID+"/items", map[string]any{
		"name": name,
	}, bearer)
	require.Equal(t, http.StatusCreated, status, "add item: %v", body)

	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}
