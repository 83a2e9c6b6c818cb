package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/cashclose_app/internal/adapters/gemini"
	"github.com/SscSPs/cashclose_app/internal/cli"
	"github.com/SscSPs/cashclose_app/internal/core/services"
	"github.com/SscSPs/cashclose_app/internal/platform/config"
	"github.com/SscSPs/cashclose_app/internal/repositories/factory"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig(
		config.WithDefault("STORE_BACKEND", config.StoreBackendSQLite),
		config.WithDefault("LOG_LEVEL", "warn"),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	repos, err := factory.NewRepositoryProvider(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		return 1
	}
	defer repos.Store.Close()

	generator, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:   cfg.GeminiAPIKey,
		Model:    cfg.GeminiModel,
		Endpoint: cfg.GeminiEndpoint,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		return 1
	}

	// The terminal client does not publish closing events.
	container, err := services.NewServiceContainer(cfg, repos, generator, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		return 1
	}

	if err := cli.NewCLI(cli.Options{Services: container}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		return 1
	}
	return 0
}
