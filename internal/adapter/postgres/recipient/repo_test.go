package recipient_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/recipient"
	"github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

func TestCreateAndGet(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := recipient.New(pool)
	ctx := context.Background()

	email := uuid.New().String()[:8] + "@example.com"
	created, err := repo.Create(ctx, &domain.Recipient{
		Email:        email,
		Name:         "New Recipient",
		PasswordHash: "$2a$10$not-a-real-hash",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt from database")
	}

	byID, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Email != email {
		t.Errorf("email: got %q, want %q", byID.Email, email)
	}

	byEmail, err := repo.GetByEmail(ctx, email)
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Errorf("ID: got %v, want %v", byEmail.ID, created.ID)
	}
	if byEmail.PasswordHash != "$2a$10$not-a-real-hash" {
		t.Errorf("password hash not round-tripped: %q", byEmail.PasswordHash)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := recipient.New(pool)
	ctx := context.Background()

	existing := testhelper.SeedRecipient(t, pool)

	_, err := repo.Create(ctx, &domain.Recipient{
		Email:        existing.Email,
		Name:         "Imposter",
		PasswordHash: "$2a$10$another-hash",
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := recipient.New(pool)
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID: expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByEmail: expected ErrNotFound, got %v", err)
	}
}
