package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}

	if c.Wishlist.MaxItemsPerWishlist <= 0 {
		return fmt.Errorf("wishlist.max_items_per_wishlist must be > 0 (got %d)", c.Wishlist.MaxItemsPerWishlist)
	}

	if c.Wishlist.MaxWishlistsPerAccount <= 0 {
		return fmt.Errorf("wishlist.max_wishlists_per_account must be > 0 (got %d)", c.Wishlist.MaxWishlistsPerAccount)
	}

	if c.Rate.Enabled && c.Rate.PerMinute <= 0 {
		return fmt.Errorf("rate.per_minute must be > 0 when rate limiting is enabled (got %d)", c.Rate.PerMinute)
	}

	return nil
}
