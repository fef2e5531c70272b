// Command worker drains the settlement job queue.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"makeabet/internal/app"
	"makeabet/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "worker:", err)
		os.Exit(1)
	}
}

func run() error {
	loaded, err := config.LoadDotenv(".")
	if err != nil {
		return err
	}
	cfg, err := config.LoadWorker()
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log.Debug("dotenv loaded", zap.Strings("files", loaded))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting settlement worker", zap.String("target_chain", cfg.TargetChain), zap.String("db", cfg.DBPath))
	return app.RunWorker(ctx, cfg, log)
}
