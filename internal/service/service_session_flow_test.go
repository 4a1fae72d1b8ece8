package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mini-x/user-service/internal/cache"
	"github.com/mini-x/user-service/internal/config"
	"github.com/mini-x/user-service/internal/logger"
	"github.com/mini-x/user-service/internal/store"
	"github.com/mini-x/user-service/internal/utils"
	"github.com/mini-x/user-service/models"
)

// inMemoryUsers is a map-backed UserRepository for flow tests that need a
// working store without a database.
type inMemoryUsers struct {
	mu      sync.Mutex
	byEmail map[string]models.User
	byID    map[string]models.User
}

func newInMemoryUsers() *inMemoryUsers {
	return &inMemoryUsers{
		byEmail: make(map[string]models.User),
		byID:    make(map[string]models.User),
	}
}

func (s *inMemoryUsers) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byEmail[user.Email]; taken {
		return models.User{}, store.ErrEmailAlreadyExists
	}
	user.CreatedAt = time.Now()
	s.byEmail[user.Email] = user
	s.byID[user.ID] = user
	return user, nil
}

func (s *inMemoryUsers) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byEmail[email]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func (s *inMemoryUsers) FindUsersByIDs(_ context.Context, ids []string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found []models.User
	for _, id := range ids {
		if user, ok := s.byID[id]; ok {
			found = append(found, user)
		}
	}
	return found, nil
}

// staticIssuer stamps the subject into the token so tests can verify who a
// token was issued for without parsing JWTs.
type staticIssuer struct{}

func (staticIssuer) IssueAccessToken(subjectID string) (string, error) {
	return "access-for-" + subjectID, nil
}

func newFlowTestServices(t *testing.T) (SessionService, IdentityService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	log := logger.Nop()

	client, err := cache.NewClient(config.Cache{Addr: mr.Addr(), OpTimeout: time.Second}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	users := newInMemoryUsers()
	sessions := cache.NewSessionCache(client)
	identities := cache.NewIdentityCache(client, 12*time.Hour)

	cfg := config.App{
		HashRounds:      4,
		RefreshTokenTTL: time.Hour,
	}

	sessionSvc := NewSessionService(users, sessions, identities, staticIssuer{}, utils.NewULIDGenerator(), cfg, log)
	identitySvc := NewIdentityService(users, identities, log)

	return sessionSvc, identitySvc, mr
}

func TestSessionFlow_RegisterLoginRefreshLogout(t *testing.T) {
	sessionSvc, _, _ := newFlowTestServices(t)
	ctx := context.Background()

	created, err := sessionSvc.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	pair, err := sessionSvc.Login(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "access-for-"+created.ID, pair.AccessToken)
	assert.Len(t, pair.RefreshToken, 43)

	rotated, err := sessionSvc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "access-for-"+created.ID, rotated.AccessToken)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// one-time use: the pre-rotation token is dead
	_, err = sessionSvc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = sessionSvc.Logout(ctx, rotated.RefreshToken)
	require.NoError(t, err)

	// and a logged-out token cannot be refreshed or logged out again
	_, err = sessionSvc.Refresh(ctx, rotated.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	err = sessionSvc.Logout(ctx, rotated.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionFlow_DuplicateRegistration(t *testing.T) {
	sessionSvc, _, _ := newFlowTestServices(t)
	ctx := context.Background()

	_, err := sessionSvc.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = sessionSvc.Register(ctx, "alice2", "alice@example.com", "another-pw")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestSessionFlow_ExpiredRefreshToken(t *testing.T) {
	sessionSvc, _, mr := newFlowTestServices(t)
	ctx := context.Background()

	_, err := sessionSvc.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	pair, err := sessionSvc.Login(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = sessionSvc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionFlow_RegistrationPopulatesIdentityCache(t *testing.T) {
	sessionSvc, identitySvc, _ := newFlowTestServices(t)
	ctx := context.Background()

	created, err := sessionSvc.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	data, err := identitySvc.GetUsersData(ctx, []string{created.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, data.Usernames)
	assert.Equal(t, []string{created.ID}, data.UserIDs)
}
