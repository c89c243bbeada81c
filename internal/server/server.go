package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/handler"
	"github.com/maxazure/home/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	if err := s.run(); err != nil {
		s.logger.Err(err).Str("func", "server.RunServer").Msg("error running server")
		return err
	}
	return nil
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until SIGTERM, SIGINT or SIGQUIT arrives or the listener
// fails, then shuts the listener down gracefully.
func (s *server) run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.serve(ctx)
}

func (s *server) serve(ctx context.Context) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		s.logger.Info().Msg("server shutdown gracefully")
		return nil
	case err := <-serveErr:
		return err
	}
}
