package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/giftwish-backend/internal/adapter/postgres"
	claimrepo "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/claim"
	gifterrepo "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/gifter"
	itemrepo "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/item"
	recipientrepo "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/recipient"
	wishlistrepo "github.com/heartmarshall/giftwish-backend/internal/adapter/postgres/wishlist"
	"github.com/heartmarshall/giftwish-backend/internal/auth"
	"github.com/heartmarshall/giftwish-backend/internal/config"
	authsvc "github.com/heartmarshall/giftwish-backend/internal/service/auth"
	"github.com/heartmarshall/giftwish-backend/internal/service/sharing"
	wishlistsvc "github.com/heartmarshall/giftwish-backend/internal/service/wishlist"
	"github.com/heartmarshall/giftwish-backend/internal/token"
	"github.com/heartmarshall/giftwish-backend/internal/transport/middleware"
	"github.com/heartmarshall/giftwish-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories into services and HTTP handlers, and
// serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	recipients := recipientrepo.New(pool)
	wishlists := wishlistrepo.New(pool)
	items := itemrepo.New(pool)
	gifters := gifterrepo.New(pool)
	claims := claimrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := token.New()

	authService := authsvc.NewService(logger, recipients, hasher, jwtManager)
	wishlistService := wishlistsvc.NewService(logger, wishlists, items, claims, tokens, cfg.Wishlist)
	sharingService := sharing.NewService(logger, wishlists, items, claims, gifters, txm)

	router := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Wishlist: rest.NewWishlistHandler(wishlistService, logger),
		Shared:   rest.NewSharedHandler(sharingService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	})

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Rate.Enabled {
		limiter := middleware.NewRateLimiter(cfg.Rate.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Rate.PerMinute))
	}
	mws = append(mws, middleware.Auth(authService))

	handler := middleware.Chain(mws...)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
