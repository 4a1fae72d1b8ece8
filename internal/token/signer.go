package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSigningKey is returned by NewSigner when no private key is supplied.
var ErrNoSigningKey = errors.New("no signing key provided")

// Signer mints short-lived RS256 access tokens for authenticated subjects.
// It is a pure function of the key material and the clock: no network or
// storage access happens on the issuing path.
//
// The signer is safe for concurrent use; all state is read-only after
// construction.
type Signer struct {
	keys     *KeyPair
	issuer   string
	audience string
	ttl      time.Duration

	// now is the clock source, overridable in tests.
	now func() time.Time
}

// NewSigner constructs a Signer issuing tokens with the given issuer and
// audience claims and the given lifetime.
//
// A structurally invalid key is rejected here: signing must never fail
// per-request, so the one failure mode is pushed to startup.
func NewSigner(keys *KeyPair, issuer, audience string, ttl time.Duration) (*Signer, error) {
	if keys == nil || keys.PrivateKey == nil {
		return nil, ErrNoSigningKey
	}
	if err := keys.PrivateKey.Validate(); err != nil {
		return nil, fmt.Errorf("invalid signing key: %w", err)
	}

	return &Signer{
		keys:     keys,
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// IssueAccessToken builds and signs an access token asserting that subjectID
// authenticated at the current instant. The token carries
//
//	sub = subjectID, iss = configured issuer, aud = [configured audience],
//	iat = now, exp = now + configured TTL
//
// and is signed with RS256.
func (s *Signer) IssueAccessToken(subjectID string) (string, error) {
	now := s.now()
	claims := &jwt.RegisteredClaims{
		Subject:   subjectID,
		Issuer:    s.issuer,
		Audience:  jwt.ClaimStrings{s.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.keys.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("error signing access token: %w", err)
	}

	return signed, nil
}

// PublicKeyPEM returns the PEM encoding of the verification key. External
// verifiers validate access tokens with this key; the service itself never
// needs to introspect an access token.
func (s *Signer) PublicKeyPEM() string {
	return s.keys.PublicKeyPEM
}
