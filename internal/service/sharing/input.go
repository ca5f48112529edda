package sharing

import (
	"strings"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// ClaimInput holds the gifter's self-reported identity for a claim.
type ClaimInput struct {
	GifterName  string
	GifterEmail *string
}

// Validate validates the claim input.
func (i ClaimInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.GifterName) == "" {
		errs = append(errs, domain.FieldError{Field: "gifter_name", Message: "required"})
	} else if len(i.GifterName) > 200 {
		errs = append(errs, domain.FieldError{Field: "gifter_name", Message: "too long"})
	}

	if i.GifterEmail != nil && *i.GifterEmail != "" {
		if !strings.Contains(*i.GifterEmail, "@") || len(*i.GifterEmail) > 254 {
			errs = append(errs, domain.FieldError{Field: "gifter_email", Message: "invalid email"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
