package app

import (
	"context"

	"go.uber.org/zap"

	"makeabet/internal/config"
	"makeabet/internal/worker"
)

// RunAPI serves the API on cfg.Addr() until ctx ends.
func RunAPI(ctx context.Context, cfg config.API, log *zap.Logger) error {
	w, err := NewWire(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer w.Close()
	return w.Server.ListenAndServe(ctx, cfg.Addr())
}

// RunWorker opens the job queue and runs the settlement worker until ctx
// ends.
func RunWorker(ctx context.Context, cfg config.Worker, log *zap.Logger) error {
	q, err := worker.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := q.Close(); err != nil {
			log.Warn("close worker queue", zap.Error(err))
		}
	}()

	w := worker.New(q, worker.Config{
		PollInterval: cfg.PollInterval,
		MaxAttempts:  cfg.MaxAttempts,
	}, log)
	return w.Run(ctx)
}
