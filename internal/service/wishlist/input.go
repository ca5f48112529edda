package wishlist

import (
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/giftwish-backend/internal/domain"
)

// DefaultEndDate returns December 25 of now's year, the end date applied
// when a wishlist is created without one.
func DefaultEndDate(now time.Time) time.Time {
	return time.Date(now.Year(), time.December, 25, 0, 0, 0, 0, time.UTC)
}

// CreateWishlistInput holds parameters for wishlist creation.
// A nil EndDate defaults to December 25 of the current year.
type CreateWishlistInput struct {
	Title   string
	EndDate *time.Time
}

// Validate validates the create input.
func (i CreateWishlistInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateWishlistInput holds partial-update parameters for a wishlist.
type UpdateWishlistInput struct {
	Title   *string
	EndDate *time.Time
}

// Validate validates the update input.
func (i UpdateWishlistInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if len(*i.Title) > 200 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddItemInput holds parameters for adding an item to a wishlist.
type AddItemInput struct {
	Name        string
	Description *string
	Link        *string
}

// Validate validates the add item input.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if err := validateLink(i.Link); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput holds partial-update parameters for an item.
// nil means "don't change"; an empty string clears an optional field.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Link        *string
}

// Validate validates the update item input.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if strings.TrimSpace(*i.Name) == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*i.Name) > 200 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if i.Link != nil && *i.Link != "" {
		if err := validateLink(i.Link); err != nil {
			errs = append(errs, *err)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateLink checks that a non-empty link is an absolute http(s) URL.
func validateLink(link *string) *domain.FieldError {
	if link == nil || *link == "" {
		return nil
	}
	if len(*link) > 2000 {
		return &domain.FieldError{Field: "link", Message: "too long"}
	}
	u, err := url.Parse(*link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &domain.FieldError{Field: "link", Message: "must be an http(s) URL"}
	}
	return nil
}
