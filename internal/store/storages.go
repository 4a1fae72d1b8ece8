package store

import (
	"context"

	"github.com/mini-x/user-service/internal/config"
	"github.com/mini-x/user-service/internal/logger"
	"github.com/mini-x/user-service/migrations"
)

// Storages bundles the repositories handed to the service layer.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages connects the relational backend, applies pending migrations
// and constructs the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}, nil
}
