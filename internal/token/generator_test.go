package token

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"strings"
	"testing"
)

var tokenFormat = regexp.MustCompile(`^[a-z]+-[a-z]+-[0-9]{1,2}$`)

func TestGenerate_WellFormed(t *testing.T) {
	t.Parallel()

	g := New()
	for i := 0; i < 1000; i++ {
		tok := g.Generate()
		if !tokenFormat.MatchString(tok) {
			t.Fatalf("malformed token: %q", tok)
		}

		parts := strings.SplitN(tok, "-", 3)
		if !slices.Contains(adjectives, parts[0]) {
			t.Fatalf("unknown adjective in %q", tok)
		}
		if !slices.Contains(nouns, parts[1]) {
			t.Fatalf("unknown noun in %q", tok)
		}
	}
}

func TestGenerateUnique_EmptyNamespace(t *testing.T) {
	t.Parallel()

	g := New()
	neverTaken := func(ctx context.Context, token string) (bool, error) { return false, nil }

	// Against an empty uniqueness set, 1000 calls must all succeed first try.
	for i := 0; i < 1000; i++ {
		tok, err := g.GenerateUnique(context.Background(), neverTaken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tokenFormat.MatchString(tok) {
			t.Fatalf("malformed token: %q", tok)
		}
	}
}

func TestGenerateUnique_RetriesOnCollision(t *testing.T) {
	t.Parallel()

	g := New()

	calls := 0
	taken := func(ctx context.Context, token string) (bool, error) {
		calls++
		return calls <= 3, nil // first three candidates collide
	}

	tok, err := g.GenerateUnique(context.Background(), taken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok == "" {
		t.Fatal("expected a token")
	}
	if calls != 4 {
		t.Errorf("taken calls: got %d, want 4", calls)
	}
}

func TestGenerateUnique_ExhaustedNamespace(t *testing.T) {
	t.Parallel()

	g := New()
	alwaysTaken := func(ctx context.Context, token string) (bool, error) { return true, nil }

	_, err := g.GenerateUnique(context.Background(), alwaysTaken)
	if err == nil {
		t.Fatal("expected exhaustion error")
	}
	if !strings.Contains(err.Error(), "exhausted") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerateUnique_PropagatesCheckError(t *testing.T) {
	t.Parallel()

	g := New()
	boom := errors.New("connection refused")
	failing := func(ctx context.Context, token string) (bool, error) { return false, boom }

	_, err := g.GenerateUnique(context.Background(), failing)
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped check error, got %v", err)
	}
}
