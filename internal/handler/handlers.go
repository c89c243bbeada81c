package handler

import (
	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/handler/http"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Server, cfg.Security, logger),
	}, nil
}
