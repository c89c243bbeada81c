package http

import (
	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/service"
	"github.com/maxazure/home/internal/validators"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "session"

type Handler struct {
	services  *service.Services
	validator validators.Validator

	server   config.Server
	security config.Security

	logger *logger.Logger
}

func NewHandler(services *service.Services, server config.Server, security config.Security, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		server:    server,
		security:  security,
		logger:    logger,
	}
}
