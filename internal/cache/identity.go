package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/mini-x/user-service/internal/logger"
	"github.com/mini-x/user-service/models"
)

// identityKeyPrefix namespaces identity projections within the backend.
const identityKeyPrefix = "user:"

// IdentityCache stores small identity projections (id + username) with a
// fixed TTL. It is an optimization, not a source of truth: every operation
// degrades on backend failure (reads turn into misses, writes into logged
// no-ops) and never propagates an error to the caller.
type IdentityCache struct {
	client *Client
	ttl    time.Duration
}

func NewIdentityCache(client *Client, ttl time.Duration) *IdentityCache {
	return &IdentityCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached projection for userID, reporting a miss for absent
// keys, undecodable payloads and unavailable backends alike.
func (c *IdentityCache) Get(ctx context.Context, userID string) (models.CachedIdentity, bool) {
	log := logger.FromContext(ctx)

	raw, err := c.client.get(ctx, identityKeyPrefix+userID)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			log.Err(err).Str("user_id", userID).Msg("identity cache get failed, degrading to miss")
		}
		return models.CachedIdentity{}, false
	}

	var identity models.CachedIdentity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		log.Err(err).Str("user_id", userID).Msg("corrupt identity cache payload, degrading to miss")
		return models.CachedIdentity{}, false
	}

	return identity, true
}

// GetMany resolves a batch of user ids in one backend round trip. The result
// holds an entry per cache hit; misses and corrupt payloads are simply
// absent, and a backend failure yields an empty result.
func (c *IdentityCache) GetMany(ctx context.Context, userIDs []string) map[string]models.CachedIdentity {
	log := logger.FromContext(ctx)

	if len(userIDs) == 0 {
		return map[string]models.CachedIdentity{}
	}

	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = identityKeyPrefix + id
	}

	values, err := c.client.mget(ctx, keys...)
	if err != nil {
		log.Err(err).Int("requested", len(userIDs)).Msg("identity cache batch get failed, degrading to full miss")
		return map[string]models.CachedIdentity{}
	}

	found := make(map[string]models.CachedIdentity, len(userIDs))
	for i, raw := range values {
		if raw == "" {
			continue
		}

		var identity models.CachedIdentity
		if err := json.Unmarshal([]byte(raw), &identity); err != nil {
			log.Err(err).Str("user_id", userIDs[i]).Msg("corrupt identity cache payload, skipping")
			continue
		}
		found[userIDs[i]] = identity
	}

	return found
}

// Set stores the projection under its user id with the fixed TTL. Failures
// are logged and swallowed; the next read simply misses and repopulates.
func (c *IdentityCache) Set(ctx context.Context, identity models.CachedIdentity) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(identity)
	if err != nil {
		log.Err(err).Str("user_id", identity.UserID).Msg("identity cache marshal failed")
		return
	}

	if err := c.client.set(ctx, identityKeyPrefix+identity.UserID, string(payload), c.ttl); err != nil {
		log.Err(err).Str("user_id", identity.UserID).Msg("identity cache set failed, skipping")
	}
}

// Delete drops the projection for userID. Best effort, like Set.
func (c *IdentityCache) Delete(ctx context.Context, userID string) {
	log := logger.FromContext(ctx)

	if _, err := c.client.del(ctx, identityKeyPrefix+userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("identity cache delete failed, skipping")
	}
}
