package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/mini-x/user-service/models"
)

// SessionService manages account and session lifecycle: registration,
// credential verification and the refresh-token state machine.
type SessionService interface {
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

// IdentityService resolves user ids to public identity data through a
// read-through cache.
type IdentityService interface {
	GetUsersData(ctx context.Context, userIDs []string) (models.UsersData, error)
}

// SessionTokenCache is the source of truth for refresh-token validity.
// A refresh token is active while its key is present with a positive TTL.
type SessionTokenCache interface {
	StoreRefreshToken(ctx context.Context, userID, refreshToken string, ttl time.Duration) error
	UserIDByRefreshToken(ctx context.Context, refreshToken string) (string, error)
	DeleteRefreshToken(ctx context.Context, refreshToken string) (bool, error)
	RefreshTokenTTL(ctx context.Context, refreshToken string) (time.Duration, error)
}

// IdentityProjectionCache is a best-effort projection of public user
// identity. Reads degrade to a miss on backend failure and writes are
// fire-and-forget.
type IdentityProjectionCache interface {
	Get(ctx context.Context, userID string) (models.CachedIdentity, bool)
	GetMany(ctx context.Context, userIDs []string) map[string]models.CachedIdentity
	Set(ctx context.Context, identity models.CachedIdentity)
	Delete(ctx context.Context, userID string)
}

// AccessTokenIssuer mints short-lived signed access tokens for a subject.
type AccessTokenIssuer interface {
	IssueAccessToken(subjectID string) (string, error)
}

// IDGenerator produces unique identifiers for newly created users.
type IDGenerator interface {
	Generate() string
}
