// Command server runs the giftwish HTTP API.
//
// Configuration is read from config.yaml (path via CONFIG_PATH) and
// environment variables. DATABASE_DSN and AUTH_JWT_SECRET are required.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/giftwish-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("app: %v", err)
	}
}
