// Command seed populates the database with a demo recipient, a sample
// wishlist, and a few items. It is intended for local development and demo
// environments, not production.
//
// Flags:
//
//	--email     demo account email (default demo@giftwish.local)
//	--password  demo account password (default demo-password)
//
// Requires DATABASE_DSN. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/giftwish-backend/internal/adapter/postgres"
	itemrepo "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/item"
	recipientrepo "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/recipient"
	wishlistrepo "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/wishlist"
	"github.com/heartmarshall/giftwish-backend/internal/app"
	"github.com/heartmarshall/giftwish-backend/internal/auth"
	"github.com/heartmarshall/giftwish-backend/internal/config"
	"github.com/heartmarshall/giftwish-backend/internal/domain"
	"github.com/heartmarshall/giftwish-backend/internal/token"
)

func main() {
	emailFlag := flag.String("email", "demo@giftwish.local", "demo account email")
	passwordFlag := flag.String("password", "demo-password", "demo account password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	recipients := recipientrepo.New(pool)
	wishlists := wishlistrepo.New(pool)
	items := itemrepo.New(pool)

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	hash, err := hasher.Hash(*passwordFlag)
	if err != nil {
		logger.Error("hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rec, err := recipients.Create(ctx, &domain.Recipient{
		Email:        *emailFlag,
		Name:         "Demo Recipient",
		PasswordHash: hash,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		logger.Info("demo account already seeded", slog.String("email", *emailFlag))
		return
	}
	if err != nil {
		logger.Error("create recipient", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shareToken, err := token.New().GenerateUnique(ctx, wishlists.TokenExists)
	if err != nil {
		logger.Error("generate share token", slog.String("error", err.Error()))
		os.Exit(1)
	}

	w, err := wishlists.Create(ctx, &domain.Wishlist{
		RecipientID: rec.ID,
		Title:       "Birthday Wishlist",
		ShareToken:  shareToken,
		EndDate:     time.Now().AddDate(0, 1, 0),
	})
	if err != nil {
		logger.Error("create wishlist", slog.String("error", err.Error()))
		os.Exit(1)
	}

	demoItems := []struct {
		name, desc string
	}{
		{"Wool socks", "Size 42, any dark color"},
		{"Espresso cups", "Set of two, double walled"},
		{"Board game", "Something cooperative for 2-4 players"},
	}
	for _, it := range demoItems {
		desc := it.desc
		if _, err := items.Create(ctx, &domain.Item{
			WishlistID:  w.ID,
			Name:        it.name,
			Description: &desc,
		}); err != nil {
			logger.Error("create item", slog.String("name", it.name), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("demo data seeded",
		slog.String("email", *emailFlag),
		slog.String("share_token", shareToken),
	)
}
