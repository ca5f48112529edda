package auth

import "github.com/heartmarshall/giftwish-backend/internal/domain"

// SessionResult is returned by Register and Login: a signed session token
// plus the recipient it identifies.
type SessionResult struct {
	Token     string
	Recipient *domain.Recipient
}
