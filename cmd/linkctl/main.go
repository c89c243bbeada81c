package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/maxazure/home/internal/adapter"
	"github.com/maxazure/home/internal/client"
	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log := logger.NewConsoleLogger("linkctl", os.Stderr, os.Getenv("LINKCTL_VERBOSE") != "")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, cfg.Credentials, nil, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "linkctl: %v\n", err)
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrNoCommand) {
			return 2
		}
		return 1
	}
	return 0
}
