package main

import (
	"context"
	"fmt"

	"github.com/mini-x/user-service/internal/cache"
	"github.com/mini-x/user-service/internal/config"
	handlerhttp "github.com/mini-x/user-service/internal/handler/http"
	"github.com/mini-x/user-service/internal/logger"
	"github.com/mini-x/user-service/internal/server"
	"github.com/mini-x/user-service/internal/service"
	"github.com/mini-x/user-service/internal/store"
	"github.com/mini-x/user-service/internal/token"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-service")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	sessionClient, err := cache.NewClient(cfg.Storage.SessionCache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to session cache")
	}
	defer sessionClient.Close()

	identityClient, err := cache.NewClient(cfg.Storage.IdentityCache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to identity cache")
	}
	defer identityClient.Close()

	// signing-key failure is fatal only here at startup
	keys, err := token.LoadKeyPair(cfg.App.PrivateKeyPath, cfg.App.PublicKeyPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading signing keys")
	}

	signer, err := token.NewSigner(keys, cfg.App.TokenIssuer, cfg.App.TokenAudience, cfg.App.AccessTokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token signer")
	}

	sessions := cache.NewSessionCache(sessionClient)
	identities := cache.NewIdentityCache(identityClient, cfg.App.IdentityCacheTTL)

	services := service.NewServices(*storages, sessions, identities, signer, cfg.App, log)

	handler := handlerhttp.NewHandler(services, signer.PublicKeyPEM(), log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
