package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"hash"
	"strconv"
	"strings"
)

// DefaultHashRounds is the round count embedded into newly produced password
// hashes. Stored hashes carry their own round count, so this can change
// without invalidating existing records.
const DefaultHashRounds = 12

// hashAlgorithm is the digest algorithm name embedded into new hashes.
const hashAlgorithm = "SHA-256"

// passwordSaltSize is the size in bytes of the random salt prepended to the
// first hashing round.
const passwordSaltSize = 16

// digestConstructors maps self-describing algorithm names to digest
// constructors. Verification of a stored hash whose algorithm is absent here
// fails authentication rather than erroring.
var digestConstructors = map[string]func() hash.Hash{
	"SHA-256": sha256.New,
}

// HashPassword turns a plaintext password into a versioned, salted, iterated
// digest string of the form
//
//	{algorithm}${rounds}${salt-base64}${digest-base64}
//
// A fresh 16-byte cryptographically random salt is generated per call. The
// format is fully self-describing: VerifyPassword recomputes the digest using
// the parameters embedded in the stored string, so the round count or
// algorithm can change over time without a data migration.
//
// Fails only if the random source is unavailable, which is a configuration
// fault rather than a runtime condition.
func HashPassword(password string, rounds int) (string, error) {
	if rounds <= 0 {
		rounds = DefaultHashRounds
	}

	salt := make([]byte, passwordSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	digest := iterateDigest(digestConstructors[hashAlgorithm](), salt, []byte(password), rounds)

	return strings.Join([]string{
		hashAlgorithm,
		strconv.Itoa(rounds),
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(digest),
	}, "$"), nil
}

// VerifyPassword reports whether password matches the stored versioned hash.
//
// A malformed, truncated or foreign hash returns false rather than an error: a
// corrupted credential record must fail authentication, never abort the login
// path. The digest comparison is constant-time.
func VerifyPassword(password, storedHash string) bool {
	parts := strings.Split(storedHash, "$")
	if len(parts) != 4 {
		return false
	}

	newDigest, ok := digestConstructors[parts[0]]
	if !ok {
		return false
	}

	rounds, err := strconv.Atoi(parts[1])
	if err != nil || rounds <= 0 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}

	expected, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return false
	}

	computed := iterateDigest(newDigest(), salt, []byte(password), rounds)

	return subtle.ConstantTimeCompare(computed, expected) == 1
}

// iterateDigest applies the iterated digest recurrence: the first round
// digests salt||password, every following round digests the raw output of
// the previous round.
func iterateDigest(h hash.Hash, salt, password []byte, rounds int) []byte {
	h.Write(salt)

	current := password
	for i := 0; i < rounds; i++ {
		h.Write(current)
		current = h.Sum(nil)
		h.Reset()
	}

	return current
}
