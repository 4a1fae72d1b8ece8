package config

import "fmt"

// validate checks the loaded configuration for values the service cannot run
// without. Defaults cover everything else.
func (c *StructuredConfig) validate() error {
	if c.Storage.DB.DSN == "" {
		return fmt.Errorf("config validation: %w", ErrNoDSNProvided)
	}

	if c.App.PrivateKeyPath == "" {
		return fmt.Errorf("config validation: %w", ErrNoPrivateKeyPath)
	}

	if c.App.AccessTokenTTL <= 0 || c.App.RefreshTokenTTL <= 0 || c.App.IdentityCacheTTL <= 0 {
		return fmt.Errorf("config validation: %w", ErrNonPositiveTTL)
	}

	return nil
}
