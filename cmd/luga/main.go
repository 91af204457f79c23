package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/luga-ai/luga-cli/internal/cli"
	"github.com/luga-ai/luga-cli/internal/config"
	"github.com/luga-ai/luga-cli/internal/logging"
)

func main() {

	// No process-wide SIGINT handling: commands that wait (watch) scope
	// their own interrupt context, so Ctrl-C stops the wait, not the REPL.
	ctx := context.Background()

	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
