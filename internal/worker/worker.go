package worker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	// SettlementQueue holds market settlement jobs.
	SettlementQueue = "settlement"
	// WarmupJob is enqueued once at startup to prove the queue round-trips.
	WarmupJob = "warmup"
)

// Handler processes one claimed job. A returned error schedules a retry.
type Handler func(ctx context.Context, job Job) error

// Config controls the polling loop.
type Config struct {
	PollInterval time.Duration
	MaxAttempts  int
	// Handler defaults to LogSettlement.
	Handler Handler
}

// Worker drains the settlement queue.
type Worker struct {
	queue *Queue
	cfg   Config
	log   *zap.Logger
}

// New returns a Worker over q.
func New(q *Queue, cfg Config, log *zap.Logger) *Worker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Handler == nil {
		cfg.Handler = LogSettlement(log)
	}
	return &Worker{queue: q, cfg: cfg, log: log}
}

// LogSettlement only logs the job. Settling markets against Pyth prices
// happens on-chain and is not done here.
func LogSettlement(log *zap.Logger) Handler {
	return func(_ context.Context, job Job) error {
		log.Info("Processing settlement job",
			zap.String("job_id", job.ID),
			zap.String("name", job.Name),
			zap.Int("attempt", job.Attempts),
		)
		return nil
	}
}

// Run enqueues the warmup job and processes jobs until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	if _, err := w.queue.Enqueue(ctx, SettlementQueue, WarmupJob, struct{}{}); err != nil {
		return fmt.Errorf("enqueue warmup: %w", err)
	}
	w.log.Info("Worker up and running",
		zap.String("queue", SettlementQueue),
		zap.Duration("poll_interval", w.cfg.PollInterval),
	)

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()
	for {
		if err := w.drain(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			w.log.Error("worker poll failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *Worker) drain(ctx context.Context) error {
	for {
		processed, err := w.ProcessNext(ctx)
		if err != nil || !processed {
			return err
		}
	}
}

// ProcessNext claims and handles one job. It reports false when the queue
// had nothing ready.
func (w *Worker) ProcessNext(ctx context.Context) (bool, error) {
	job, ok, err := w.queue.Claim(ctx, SettlementQueue)
	if err != nil || !ok {
		return false, err
	}

	herr := w.handle(ctx, job)

	// The outcome is recorded even when ctx was cancelled during the job.
	wctx := context.WithoutCancel(ctx)
	if herr == nil {
		return true, w.queue.Complete(wctx, job.ID)
	}

	retryAt := w.queue.now().Add(w.cfg.PollInterval * time.Duration(job.Attempts))
	state, err := w.queue.Fail(wctx, job, herr, w.cfg.MaxAttempts, retryAt)
	if err != nil {
		return true, err
	}
	w.log.Error("Settlement job failed",
		zap.String("job_id", job.ID),
		zap.Int("attempt", job.Attempts),
		zap.String("state", string(state)),
		zap.Error(herr),
	)
	return true, nil
}

func (w *Worker) handle(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return w.cfg.Handler(ctx, job)
}
