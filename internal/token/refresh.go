package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// refreshTokenSize is the entropy of a refresh token in bytes (256 bits).
const refreshTokenSize = 32

// NewRefreshToken generates an opaque refresh token: 32 cryptographically
// random bytes, URL-safe base64 encoded without padding (43 characters).
//
// The token carries no structure and no claims; it is meaningful only as a
// session-cache key on this service, which is what makes logout and rotation
// immediate.
func NewRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenSize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating refresh token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
