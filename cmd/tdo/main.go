// Package main is the entry point for the tdo CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"tdo/internal/backend/taskapi"
	"tdo/internal/cache"
	"tdo/internal/cli"
	"tdo/internal/commands"
	"tdo/internal/config"
	"tdo/internal/service"
)

func main() {
	// Best effort; a missing .env is fine
	_ = godotenv.Load()

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create service factory: the HTTP client wrapped in the query cache
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		client, err := taskapi.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return cache.Wrap(client), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
