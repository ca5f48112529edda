package domain

import (
	"time"

	"github.com/google/uuid"
)

// Recipient is an authenticated account that owns wishlists.
type Recipient struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
