package http

import (
	"github.com/mini-x/user-service/internal/logger"
	"github.com/mini-x/user-service/internal/service"
)

type Handler struct {
	services *service.Services

	// publicKeyPEM is the PEM-encoded verification key served to external
	// verifiers over /api/auth/public-key.
	publicKeyPEM string

	logger *logger.Logger
}

func NewHandler(services *service.Services, publicKeyPEM string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		publicKeyPEM: publicKeyPEM,
		logger:       logger,
	}
}
