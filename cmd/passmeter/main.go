package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"passmeter/internal/application"
	"passmeter/internal/config"
	"passmeter/pkg/contextx"
	"passmeter/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	level, err := logx.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		slog.Warn("unknown log level, using info", logx.Error(err))
	}

	log := slog.New(logx.NewHandler(os.Stdout, cfg.App.LogFormat, level))
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err = application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}
