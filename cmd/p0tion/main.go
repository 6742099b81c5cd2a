package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/chainguard-dev/clog"
)

func main() {
	logger := clog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	ctx := clog.WithLogger(context.Background(), logger)
	if err := rootCommand().ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
