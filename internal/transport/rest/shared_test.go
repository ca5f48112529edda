package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
	"github.com/heartmarshall/giftwish-backend/internal/service/sharing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sharingServiceMock is a hand-written mock of sharingService.
type sharingServiceMock struct {
	GetSharedFunc          func(ctx context.Context, token string, viewerID uuid.UUID) (*sharing.SharedView, error)
	CheckItemAvailableFunc func(ctx context.Context, token string, itemID uuid.UUID, viewerID uuid.UUID) (bool, error)
	ClaimFunc              func(ctx context.Context, token string, itemID uuid.UUID, viewerID uuid.UUID, input sharing.ClaimInput) (*sharing.ClaimResult, error)
}

func (m *sharingServiceMock) GetShared(ctx context.Context, token string, viewerID uuid.UUID) (*sharing.SharedView, error) {
	return m.GetSharedFunc(ctx, token, viewerID)
}

func (m *sharingServiceMock) CheckItemAvailable(ctx context.Context, token string, itemID uuid.UUID, viewerID uuid.UUID) (bool, error) {
	return m.CheckItemAvailableFunc(ctx, token, itemID, viewerID)
}

func (m *sharingServiceMock) Claim(ctx context.Context, token string, itemID uuid.UUID, viewerID uuid.UUID, input sharing.ClaimInput) (*sharing.ClaimResult, error) {
	return m.ClaimFunc(ctx, token, itemID, viewerID, input)
}

func sharedRouter(svc sharingService) *http.ServeMux {
	mux := http.NewServeMux()
	h := NewSharedHandler(svc, testLogger())
	mux.HandleFunc("GET /api/shared/{token}", h.Get)
	mux.HandleFunc("GET /api/shared/{token}/items/{itemId}/available", h.CheckItem)
	mux.HandleFunc("POST /api/shared/{token}/items/{itemId}/claim", h.Claim)
	return mux
}

func TestSharedGet(t *testing.T) {
	t.Parallel()

	svc := &sharingServiceMock{
		GetSharedFunc: func(ctx context.Context, token string, viewerID uuid.UUID) (*sharing.SharedView, error) {
			if token != "jolly-elf-9" {
				t.Errorf("token: got %q", token)
			}
			return &sharing.SharedView{
				Title:         "Housewarming",
				RecipientName: "Olive",
				Items: []domain.GifterItem{
					{Item: domain.Item{ID: uuid.New(), Name: "vase"}, Claimed: true, ClaimedByName: "Max"},
				},
				TotalItems:   1,
				ClaimedCount: 1,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/shared/jolly-elf-9", nil)
	rec := httptest.NewRecorder()
	sharedRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp sharedViewResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Title != "Housewarming" || resp.RecipientName != "Olive" {
		t.Errorf("response: %+v", resp)
	}
	if len(resp.Items) != 1 || !resp.Items[0].Claimed || resp.Items[0].ClaimedByName != "Max" {
		t.Errorf("items: %+v", resp.Items)
	}
}

func TestSharedGet_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown token", domain.ErrNotFound, http.StatusNotFound},
		{"owner blocked", domain.ErrForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &sharingServiceMock{
				GetSharedFunc: func(ctx context.Context, token string, viewerID uuid.UUID) (*sharing.SharedView, error) {
					return nil, tt.err
				},
			}

			req := httptest.NewRequest(http.MethodGet, "/api/shared/some-token-1", nil)
			rec := httptest.NewRecorder()
			sharedRouter(svc).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestSharedClaim(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	svc := &sharingServiceMock{
		ClaimFunc: func(ctx context.Context, token string, iid uuid.UUID, viewerID uuid.UUID, input sharing.ClaimInput) (*sharing.ClaimResult, error) {
			if iid != itemID {
				t.Errorf("item: got %v", iid)
			}
			if input.GifterName != "Max" {
				t.Errorf("gifter name: got %q", input.GifterName)
			}
			return &sharing.ClaimResult{
				Claim:  &domain.Claim{ID: uuid.New(), ItemID: iid},
				Gifter: &domain.Gifter{ID: uuid.New(), Name: input.GifterName},
			}, nil
		},
	}

	body := strings.NewReader(`{"gifterName":"Max"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/shared/jolly-elf-9/items/"+itemID.String()+"/claim", body)
	rec := httptest.NewRecorder()
	sharedRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp claimResultResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ItemID != itemID.String() || resp.GifterName != "Max" {
		t.Errorf("response: %+v", resp)
	}
}

func TestSharedClaim_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"lost the race", domain.ErrConflict, http.StatusConflict},
		{"wishlist ended", domain.ErrExpired, http.StatusGone},
		{"owner self-claim", domain.ErrForbidden, http.StatusForbidden},
		{"unknown item", domain.ErrNotFound, http.StatusNotFound},
		{"missing name", domain.NewValidationError("gifter_name", "required"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &sharingServiceMock{
				ClaimFunc: func(ctx context.Context, token string, iid uuid.UUID, viewerID uuid.UUID, input sharing.ClaimInput) (*sharing.ClaimResult, error) {
					return nil, tt.err
				},
			}

			body := strings.NewReader(`{"gifterName":"Max"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/shared/t-t-1/items/"+uuid.New().String()+"/claim", body)
			rec := httptest.NewRecorder()
			sharedRouter(svc).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestSharedClaim_BadItemID(t *testing.T) {
	t.Parallel()

	svc := &sharingServiceMock{
		ClaimFunc: func(ctx context.Context, token string, iid uuid.UUID, viewerID uuid.UUID, input sharing.ClaimInput) (*sharing.ClaimResult, error) {
			t.Error("service must not be called for a malformed item ID")
			return nil, nil
		},
	}

	body := strings.NewReader(`{"gifterName":"Max"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/shared/t-t-1/items/not-a-uuid/claim", body)
	rec := httptest.NewRecorder()
	sharedRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

func TestSharedCheckItem(t *testing.T) {
	t.Parallel()

	svc := &sharingServiceMock{
		CheckItemAvailableFunc: func(ctx context.Context, token string, itemID uuid.UUID, viewerID uuid.UUID) (bool, error) {
			return true, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/shared/t-t-1/items/"+uuid.New().String()+"/available", nil)
	rec := httptest.NewRecorder()
	sharedRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var resp availabilityResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Available {
		t.Error("expected available")
	}
}
