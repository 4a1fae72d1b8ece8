package cache

import "errors"

// Sentinel errors returned by cache operations. Callers discriminate with
// [errors.Is]: a true miss is an expected outcome, an unavailable backend is
// an infrastructure failure. The two must never be conflated: an outage on
// the session namespace would otherwise masquerade as mass session
// revocation.
var (
	// ErrCacheMiss is returned when a key is not present in the backend.
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the backend could not be reached
	// or did not answer within the operation timeout.
	ErrCacheUnavailable = errors.New("cache unavailable")
)
