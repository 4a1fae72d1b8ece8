package models

// TokenPair is the pair of credentials returned to the caller after a
// successful login or refresh. It is ephemeral: neither half is persisted by
// this service beyond the refresh-token mapping in the session cache.
type TokenPair struct {
	// AccessToken is the compact RS256-signed JWT
	// (base64url header.payload.signature). Verifiable by any holder of the
	// service public key; not stored server-side.
	AccessToken string `json:"access_token"`

	// RefreshToken is an opaque URL-safe random string. It is meaningful
	// only as a session-cache lookup key on this service and is invalidated
	// on rotation or logout.
	RefreshToken string `json:"refresh_token"`
}
