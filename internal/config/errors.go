package config

import "errors"

var (
	// ErrNoDSNProvided is returned by validation when no database DSN was
	// configured. The service cannot run without its user store.
	ErrNoDSNProvided = errors.New("no database DSN provided")

	// ErrNoPrivateKeyPath is returned by validation when no signing key
	// location was configured. Without key material no session can be
	// issued, so this is fatal at startup.
	ErrNoPrivateKeyPath = errors.New("no private key path provided")

	// ErrNonPositiveTTL is returned by validation when a configured token
	// or cache TTL is zero or negative.
	ErrNonPositiveTTL = errors.New("TTL values must be positive")
)
