package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/mini-x/user-service/models"
)

// UserRepository is the data-access boundary for user accounts. The session
// engine only ever creates users and reads them back by email or by id
// batch; everything else about the relational store stays behind this
// interface.
type UserRepository interface {
	// CreateUser persists user and returns the canonical stored record.
	// A duplicate email surfaces as ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUsersByIDs returns the users whose ids appear in ids. Ids without
	// a matching record are silently absent from the result; an empty input
	// yields an empty result without touching the database.
	FindUsersByIDs(ctx context.Context, ids []string) ([]models.User, error)
}
