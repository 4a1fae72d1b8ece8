package service

import (
	"context"
	"fmt"

	"github.com/mini-x/user-service/internal/logger"
	"github.com/mini-x/user-service/internal/store"
	"github.com/mini-x/user-service/models"
)

// identityService resolves user ids to usernames through a read-through
// cache backed by the user store.
type identityService struct {
	users      store.UserRepository
	identities IdentityProjectionCache
	logger     *logger.Logger
}

// NewIdentityService constructs an IdentityService wired to the given
// repository and projection cache.
func NewIdentityService(users store.UserRepository, identities IdentityProjectionCache, logger *logger.Logger) IdentityService {
	return &identityService{
		users:      users,
		identities: identities,
		logger:     logger,
	}
}

// GetUsersData resolves a batch of user ids to their public identity data.
//
// Empty input returns empty slices without touching any backend. Cached
// ids are served from the projection cache in one batch read; the rest are
// fetched from the store and cached for next time. Ids that resolve in
// neither place are silently omitted, so the caller must reconcile counts
// itself. Every resolvable id appears exactly once, in input order.
func (s *identityService) GetUsersData(ctx context.Context, userIDs []string) (models.UsersData, error) {
	log := logger.FromContext(ctx)

	result := models.UsersData{
		Usernames: []string{},
		UserIDs:   []string{},
	}
	if len(userIDs) == 0 {
		return result, nil
	}

	ids := dedupe(userIDs)

	resolved := s.identities.GetMany(ctx, ids)

	var misses []string
	for _, id := range ids {
		if _, ok := resolved[id]; !ok {
			misses = append(misses, id)
		}
	}

	if len(misses) > 0 {
		users, err := s.users.FindUsersByIDs(ctx, misses)
		if err != nil {
			log.Err(err).Str("func", "*identityService.GetUsersData").Msg("user search by ids failed")
			return models.UsersData{}, fmt.Errorf("user search by ids failed: %w", err)
		}

		for _, user := range users {
			identity := models.CachedIdentity{UserID: user.ID, Username: user.Username}
			resolved[user.ID] = identity
			s.identities.Set(ctx, identity)
		}
	}

	for _, id := range ids {
		identity, ok := resolved[id]
		if !ok {
			continue
		}
		result.Usernames = append(result.Usernames, identity.Username)
		result.UserIDs = append(result.UserIDs, identity.UserID)
	}

	return result, nil
}

// dedupe removes duplicate ids preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
