package models

// CachedIdentity is the small identity projection stored in the identity
// cache: just enough to resolve a user id to a display name without touching
// the relational store. The JSON form is what goes over the cache boundary.
//
// The projection is written on registration and on every cache miss satisfied
// from the store. It is deliberately not invalidated on rename; staleness is
// tolerated up to the cache TTL.
type CachedIdentity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// UsersData is the batch identity-resolution result. Usernames[i] belongs to
// UserIDs[i]; ids that resolved in neither cache nor store are omitted, so the
// slices may be shorter than the requested id list.
type UsersData struct {
	Usernames []string `json:"usernames"`
	UserIDs   []string `json:"userIds"`
}
