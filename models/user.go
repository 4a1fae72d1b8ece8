package models

import "time"

// User represents an account entity used for authentication and identity
// resolution. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the globally unique user identifier, a 26-character ULID
	// generated at creation time. ULIDs sort lexicographically in creation
	// order, which keeps index pages warm on the storage side.
	ID string `json:"id"`

	// Username is the unique display name of the user. Non-sensitive and
	// safe to show in UI and in identity lookups.
	Username string `json:"username"`

	// Email is the unique login identifier. Uniqueness is enforced by the
	// database constraint, not by application code.
	Email string `json:"email"`

	// PasswordHash is the versioned password digest in the
	// "{algorithm}${rounds}${salt}${digest}" format. Never a plaintext
	// password and never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
