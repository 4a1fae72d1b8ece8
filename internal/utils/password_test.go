package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Format(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple", DefaultHashRounds)
	require.NoError(t, err)

	parts := strings.Split(hashed, "$")
	require.Len(t, parts, 4, "hash must have exactly 4 $-separated fields")

	assert.Equal(t, "SHA-256", parts[0])
	assert.Equal(t, strconv.Itoa(DefaultHashRounds), parts[1])

	salt, err := base64.StdEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	assert.Len(t, salt, 16)

	digest, err := base64.StdEncoding.DecodeString(parts[3])
	require.NoError(t, err)
	assert.Len(t, digest, sha256.Size)
}

func TestVerifyPassword_RoundTrip(t *testing.T) {
	passwords := []string{
		"pw",
		"a much longer password with spaces",
		"пароль",
		"p@$$w0rd$with$dollars",
		"",
	}

	for _, p := range passwords {
		hashed, err := HashPassword(p, DefaultHashRounds)
		require.NoError(t, err)
		assert.True(t, VerifyPassword(p, hashed), "verify(hash(%q)) must hold", p)
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hashed, err := HashPassword("right", DefaultHashRounds)
	require.NoError(t, err)

	assert.False(t, VerifyPassword("wrong", hashed))
	assert.False(t, VerifyPassword("Right", hashed))
	assert.False(t, VerifyPassword("right ", hashed))
}

func TestHashPassword_SaltedUniquely(t *testing.T) {
	first, err := HashPassword("same password", DefaultHashRounds)
	require.NoError(t, err)
	second, err := HashPassword("same password", DefaultHashRounds)
	require.NoError(t, err)

	// fresh salt per call: same plaintext, different digests
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same password", first))
	assert.True(t, VerifyPassword("same password", second))
}

// TestVerifyPassword_MalformedHash covers the robustness requirement: a
// corrupted or foreign stored hash fails verification, it never panics or
// errors.
func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name       string
		storedHash string
	}{
		{"empty", ""},
		{"not a hash at all", "not-a-valid-hash"},
		{"too few fields", "SHA-256$12$onlysalt"},
		{"too many fields", "SHA-256$12$c2FsdA==$ZGln$extra"},
		{"unknown algorithm", "MD5-FANCY$12$c2FsdA==$ZGlnZXN0"},
		{"non-numeric rounds", "SHA-256$twelve$c2FsdA==$ZGlnZXN0"},
		{"zero rounds", "SHA-256$0$c2FsdA==$ZGlnZXN0"},
		{"negative rounds", "SHA-256$-3$c2FsdA==$ZGlnZXN0"},
		{"invalid salt base64", "SHA-256$12$%%%$ZGlnZXN0"},
		{"invalid digest base64", "SHA-256$12$c2FsdA==$%%%"},
		{"bcrypt-style hash", "$2a$10$N9qo8uLOickgx2ZMRZoMye"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, VerifyPassword("anything", tc.storedHash))
		})
	}
}

// TestVerifyPassword_EmbeddedRoundCount verifies that old hashes produced with
// a different round count keep verifying with their embedded parameters.
func TestVerifyPassword_EmbeddedRoundCount(t *testing.T) {
	legacy, err := HashPassword("old password", 4)
	require.NoError(t, err)

	parts := strings.Split(legacy, "$")
	require.Equal(t, "4", parts[1])

	assert.True(t, VerifyPassword("old password", legacy))
	assert.False(t, VerifyPassword("new password", legacy))
}

func TestHashPassword_NonPositiveRoundsUseDefault(t *testing.T) {
	hashed, err := HashPassword("pw", 0)
	require.NoError(t, err)

	parts := strings.Split(hashed, "$")
	assert.Equal(t, strconv.Itoa(DefaultHashRounds), parts[1])
	assert.True(t, VerifyPassword("pw", hashed))
}

// TestIterateDigest_Recurrence pins the exact digest recurrence: round one
// digests salt||password, every later round digests only the previous output.
func TestIterateDigest_Recurrence(t *testing.T) {
	salt := []byte("0123456789abcdef")
	password := []byte("secret")

	h := sha256.New()
	h.Write(salt)
	h.Write(password)
	expected := h.Sum(nil)
	for i := 1; i < 3; i++ {
		next := sha256.Sum256(expected)
		expected = next[:]
	}

	got := iterateDigest(sha256.New(), salt, password, 3)
	assert.Equal(t, expected, got)
}
