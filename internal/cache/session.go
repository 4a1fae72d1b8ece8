package cache

import (
	"context"
	"time"
)

// refreshTokenPrefix namespaces session entries within the backend.
const refreshTokenPrefix = "refresh_token:"

// SessionCache maps opaque refresh tokens to subject user ids with per-key
// expiry. Unlike the identity cache this mapping is the source of truth for
// session validity: every method surfaces backend failures to the caller so
// that an outage is never mistaken for a revoked session.
type SessionCache struct {
	client *Client
}

func NewSessionCache(client *Client) *SessionCache {
	return &SessionCache{client: client}
}

// StoreRefreshToken binds refreshToken to userID for ttl. Used both for the
// initial login session and for the rotated replacement on refresh.
func (s *SessionCache) StoreRefreshToken(ctx context.Context, userID, refreshToken string, ttl time.Duration) error {
	return s.client.set(ctx, refreshTokenPrefix+refreshToken, userID, ttl)
}

// UserIDByRefreshToken resolves the subject bound to refreshToken.
// Returns ErrCacheMiss for a token that was never issued, has expired, or
// was rotated away; ErrCacheUnavailable when the backend cannot answer.
func (s *SessionCache) UserIDByRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	return s.client.get(ctx, refreshTokenPrefix+refreshToken)
}

// DeleteRefreshToken removes the session entry and reports whether it
// existed. The existed flag distinguishes a real logout from presenting a
// token that was not active.
func (s *SessionCache) DeleteRefreshToken(ctx context.Context, refreshToken string) (bool, error) {
	return s.client.del(ctx, refreshTokenPrefix+refreshToken)
}

// RefreshTokenTTL returns the remaining lifetime of the session entry.
// A negative duration means the backend holds the key without an expiry
// (an unknown TTL from the rotation policy's point of view).
func (s *SessionCache) RefreshTokenTTL(ctx context.Context, refreshToken string) (time.Duration, error) {
	return s.client.ttl(ctx, refreshTokenPrefix+refreshToken)
}

// TokenExists reports whether the session entry is present.
func (s *SessionCache) TokenExists(ctx context.Context, refreshToken string) (bool, error) {
	return s.client.exists(ctx, refreshTokenPrefix+refreshToken)
}
