package service

import (
	"github.com/mini-x/user-service/internal/cache"
	"github.com/mini-x/user-service/internal/config"
	"github.com/mini-x/user-service/internal/logger"
	"github.com/mini-x/user-service/internal/store"
	"github.com/mini-x/user-service/internal/token"
	"github.com/mini-x/user-service/internal/utils"
)

type Services struct {
	SessionService  SessionService
	IdentityService IdentityService
}

func NewServices(
	storages store.Storages,
	sessions *cache.SessionCache,
	identities *cache.IdentityCache,
	signer *token.Signer,
	cfg config.App,
	logger *logger.Logger,
) *Services {
	ids := utils.NewULIDGenerator()
	return &Services{
		SessionService:  NewSessionService(storages.UserRepository, sessions, identities, signer, ids, cfg, logger),
		IdentityService: NewIdentityService(storages.UserRepository, identities, logger),
	}
}
