package token

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeyPair(t *testing.T) *KeyPair {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	publicKeyPEM, err := encodePublicKeyPEM(&privateKey.PublicKey)
	require.NoError(t, err)

	return &KeyPair{
		PrivateKey:   privateKey,
		PublicKey:    &privateKey.PublicKey,
		PublicKeyPEM: publicKeyPEM,
	}
}

func TestNewSigner_NoKey(t *testing.T) {
	_, err := NewSigner(nil, "users-service", "api-gateway", time.Minute)
	assert.ErrorIs(t, err, ErrNoSigningKey)

	_, err = NewSigner(&KeyPair{}, "users-service", "api-gateway", time.Minute)
	assert.ErrorIs(t, err, ErrNoSigningKey)
}

func TestSigner_IssueAccessToken_Claims(t *testing.T) {
	keys := newTestKeyPair(t)

	signer, err := NewSigner(keys, "users-service", "api-gateway", 5*time.Minute)
	require.NoError(t, err)

	issuedAt := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	signer.now = func() time.Time { return issuedAt }

	signed, err := signer.IssueAccessToken("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	// verify with the public half only, the way an external verifier would
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(signed, claims, func(tok *jwt.Token) (any, error) {
		return keys.PublicKey, nil
	},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer("users-service"),
		jwt.WithAudience("api-gateway"),
		jwt.WithTimeFunc(func() time.Time { return issuedAt.Add(time.Minute) }),
	)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", claims.Subject)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issuedAt.Add(5*time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestSigner_IssueAccessToken_ExpiredTokenRejected(t *testing.T) {
	keys := newTestKeyPair(t)

	signer, err := NewSigner(keys, "users-service", "api-gateway", time.Second)
	require.NoError(t, err)

	issuedAt := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	signer.now = func() time.Time { return issuedAt }

	signed, err := signer.IssueAccessToken("user-1")
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(signed, &jwt.RegisteredClaims{}, func(tok *jwt.Token) (any, error) {
		return keys.PublicKey, nil
	}, jwt.WithTimeFunc(func() time.Time { return issuedAt.Add(time.Hour) }))
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestSigner_IssueAccessToken_TamperedTokenRejected(t *testing.T) {
	keys := newTestKeyPair(t)
	otherKeys := newTestKeyPair(t)

	signer, err := NewSigner(keys, "users-service", "api-gateway", time.Minute)
	require.NoError(t, err)

	signed, err := signer.IssueAccessToken("user-1")
	require.NoError(t, err)

	// wrong public key must fail signature verification
	_, err = jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return otherKeys.PublicKey, nil
	})
	assert.Error(t, err)
}

func TestSigner_PublicKeyPEM(t *testing.T) {
	keys := newTestKeyPair(t)

	signer, err := NewSigner(keys, "users-service", "api-gateway", time.Minute)
	require.NoError(t, err)

	pemStr := signer.PublicKeyPEM()
	assert.Contains(t, pemStr, "BEGIN PUBLIC KEY")
	assert.Equal(t, keys.PublicKeyPEM, pemStr)
}
