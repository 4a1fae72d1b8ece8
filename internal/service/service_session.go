package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mini-x/user-service/internal/cache"
	"github.com/mini-x/user-service/internal/config"
	"github.com/mini-x/user-service/internal/logger"
	"github.com/mini-x/user-service/internal/store"
	"github.com/mini-x/user-service/internal/token"
	"github.com/mini-x/user-service/internal/utils"
	"github.com/mini-x/user-service/models"
)

// sessionService is the concrete implementation of SessionService.
// It handles account registration, credential verification and the
// refresh-token state machine, using a UserRepository for persistence
// and a SessionTokenCache as the source of truth for session validity.
type sessionService struct {
	// users is the data-access layer used to create and look up accounts.
	users store.UserRepository

	// sessions holds the refreshToken -> userID mapping. A token is
	// active only while present here.
	sessions SessionTokenCache

	// identities is a best-effort projection cache populated
	// opportunistically on registration.
	identities IdentityProjectionCache

	// issuer signs short-lived access tokens.
	issuer AccessTokenIssuer

	// ids generates identifiers for new accounts.
	ids IDGenerator

	// newRefreshToken mints an opaque refresh token. Swappable in tests.
	newRefreshToken func() (string, error)

	// hashRounds is the iteration count used when hashing new passwords.
	// Stored hashes verify with their own embedded round count.
	hashRounds int

	// refreshTTL is the lifetime of a newly minted refresh token.
	refreshTTL time.Duration

	logger *logger.Logger
}

// NewSessionService constructs a SessionService wired to the given
// collaborators and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSessionService(
	users store.UserRepository,
	sessions SessionTokenCache,
	identities IdentityProjectionCache,
	issuer AccessTokenIssuer,
	ids IDGenerator,
	cfg config.App,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		users:           users,
		sessions:        sessions,
		identities:      identities,
		issuer:          issuer,
		ids:             ids,
		newRefreshToken: token.NewRefreshToken,
		hashRounds:      cfg.HashRounds,
		refreshTTL:      cfg.RefreshTokenTTL,
		logger:          logger,
	}
}

// Register creates a new user account.
//
// It validates that username, email and password are all non-empty, checks
// email uniqueness, hashes the password and delegates persistence to the
// UserRepository. The store's unique constraint stays the authority: a race
// past the pre-check still surfaces as ErrAlreadyExists from the insert.
// On success the identity cache is populated best-effort.
//
// Returns the persisted user or:
//   - ErrInvalidInput if any field is empty.
//   - ErrAlreadyExists if the email is already taken.
func (s *sessionService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		log.Error().Str("username", username).Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidInput
	}

	// optimization only: the insert below is the real uniqueness authority
	if _, err := s.users.FindUserByEmail(ctx, email); err == nil {
		log.Error().Str("email", email).Msg("email already taken")
		return models.User{}, ErrAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("func", "*sessionService.Register").Msg("uniqueness pre-check failed, relying on store constraint")
	}

	passwordHash, err := utils.HashPassword(password, s.hashRounds)
	if err != nil {
		log.Err(err).Str("func", "*sessionService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           s.ids.Generate(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrAlreadyExists
		}
		log.Err(err).Str("func", "*sessionService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	s.identities.Set(ctx, models.CachedIdentity{UserID: created.ID, Username: created.Username})

	return created, nil
}

// Login authenticates an existing user and opens a session.
//
// It looks the account up by email, verifies the password against the
// stored hash and, on success, mints a TokenPair and stores the refresh
// token in the session cache with the configured TTL.
//
// Returns the token pair or:
//   - ErrInvalidInput if email or password is empty.
//   - ErrNotFound if no account exists for the email.
//   - ErrInvalidCredentials if the password does not match.
//   - ErrUnavailable if the session could not be durably stored.
func (s *sessionService) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.TokenPair{}, ErrInvalidInput
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenPair{}, ErrNotFound
		}
		log.Err(err).Str("func", "*sessionService.Login").Msg("user search by email failed")
		return models.TokenPair{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(password, user.PasswordHash) {
		log.Error().Str("id", user.ID).Str("email", user.Email).Msg("wrong password")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	return s.openSession(ctx, user.ID)
}

// Refresh exchanges an active refresh token for a fresh TokenPair.
//
// An unrecognized token always maps to ErrInvalidCredentials: the caller
// must not learn whether it was malformed, expired or never issued. A
// session-cache outage maps to ErrUnavailable instead, so that a backend
// failure never masquerades as revocation.
//
// Rotation is one-time-use: when the token's remaining TTL is unknown or
// positive, a new opaque token with a full TTL replaces it and the old one
// becomes invalid. A token observed at exactly zero remaining TTL is
// returned unrotated.
func (s *sessionService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		log.Error().Msg("empty refresh token provided")
		return models.TokenPair{}, ErrInvalidInput
	}

	userID, err := s.sessions.UserIDByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return models.TokenPair{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*sessionService.Refresh").Msg("session lookup failed")
		return models.TokenPair{}, fmt.Errorf("%w: session lookup failed: %w", ErrUnavailable, err)
	}

	accessToken, err := s.issuer.IssueAccessToken(userID)
	if err != nil {
		log.Err(err).Str("id", userID).Str("func", "*sessionService.Refresh").Msg("access token signing failed")
		return models.TokenPair{}, fmt.Errorf("access token signing failed: %w", err)
	}

	remaining, err := s.sessions.RefreshTokenTTL(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return models.TokenPair{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*sessionService.Refresh").Msg("session TTL probe failed")
		return models.TokenPair{}, fmt.Errorf("%w: session TTL probe failed: %w", ErrUnavailable, err)
	}

	if remaining == 0 {
		// token at its last instant: hand it back as is
		return models.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
	}

	rotated, err := s.newRefreshToken()
	if err != nil {
		log.Err(err).Str("func", "*sessionService.Refresh").Msg("refresh token generation failed")
		return models.TokenPair{}, fmt.Errorf("refresh token generation failed: %w", err)
	}

	if err := s.sessions.StoreRefreshToken(ctx, userID, rotated, s.refreshTTL); err != nil {
		log.Err(err).Str("id", userID).Str("func", "*sessionService.Refresh").Msg("rotated session write failed")
		return models.TokenPair{}, fmt.Errorf("%w: rotated session write failed: %w", ErrUnavailable, err)
	}

	// best effort: the rotated token is already durable
	if _, err := s.sessions.DeleteRefreshToken(ctx, refreshToken); err != nil {
		log.Err(err).Str("id", userID).Str("func", "*sessionService.Refresh").Msg("old refresh token delete failed")
	}

	return models.TokenPair{AccessToken: accessToken, RefreshToken: rotated}, nil
}

// Logout revokes a refresh token.
//
// Deleting a token that is not active is indistinguishable from presenting
// an invalid one, so both report ErrInvalidCredentials.
func (s *sessionService) Logout(ctx context.Context, refreshToken string) error {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		log.Error().Msg("empty refresh token provided")
		return ErrInvalidInput
	}

	existed, err := s.sessions.DeleteRefreshToken(ctx, refreshToken)
	if err != nil {
		log.Err(err).Str("func", "*sessionService.Logout").Msg("session delete failed")
		return fmt.Errorf("%w: session delete failed: %w", ErrUnavailable, err)
	}
	if !existed {
		return ErrInvalidCredentials
	}

	return nil
}

// openSession mints a TokenPair for userID and durably stores the refresh
// token. A cache write failure surfaces as ErrUnavailable because the
// session was never established.
func (s *sessionService) openSession(ctx context.Context, userID string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	accessToken, err := s.issuer.IssueAccessToken(userID)
	if err != nil {
		log.Err(err).Str("id", userID).Str("func", "*sessionService.openSession").Msg("access token signing failed")
		return models.TokenPair{}, fmt.Errorf("access token signing failed: %w", err)
	}

	refreshToken, err := s.newRefreshToken()
	if err != nil {
		log.Err(err).Str("func", "*sessionService.openSession").Msg("refresh token generation failed")
		return models.TokenPair{}, fmt.Errorf("refresh token generation failed: %w", err)
	}

	if err := s.sessions.StoreRefreshToken(ctx, userID, refreshToken, s.refreshTTL); err != nil {
		log.Err(err).Str("id", userID).Str("func", "*sessionService.openSession").Msg("session write failed")
		return models.TokenPair{}, fmt.Errorf("%w: session write failed: %w", ErrUnavailable, err)
	}

	return models.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
