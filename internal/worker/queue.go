package worker

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// State is the lifecycle position of a job.
type State string

const (
	StatePending State = "pending"
	StateRunning State = "running"
	StateDone    State = "done"
	StateFailed  State = "failed"
)

// Job is one queued unit of work.
type Job struct {
	ID        string
	Queue     string
	Name      string
	Payload   json.RawMessage
	State     State
	Attempts  int
	LastError string
	CreatedAt time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id           TEXT PRIMARY KEY,
	queue        TEXT NOT NULL,
	name         TEXT NOT NULL,
	payload      BLOB NOT NULL,
	state        TEXT NOT NULL,
	attempts     INTEGER NOT NULL DEFAULT 0,
	last_error   TEXT NOT NULL DEFAULT '',
	available_at INTEGER NOT NULL,
	created_at   INTEGER NOT NULL,
	updated_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS jobs_claim ON jobs (queue, state, available_at, created_at);
`

// DefaultLease is how long a running job may go without an update before
// Claim hands it out again.
const DefaultLease = 5 * time.Minute

// Queue is a durable job queue in a SQLite file.
type Queue struct {
	db    *sql.DB
	now   func() time.Time
	lease time.Duration
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(v int64) time.Time { return time.UnixMilli(v).UTC() }

// Open opens or creates the queue database at path.
func Open(path string) (*Queue, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	clean := filepath.Clean(path)
	if dir := filepath.Dir(clean); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create worker storage dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", clean+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Queue{db: db, now: time.Now, lease: DefaultLease}, nil
}

// Close closes the database handle.
func (q *Queue) Close() error {
	if q == nil || q.db == nil {
		return nil
	}
	return q.db.Close()
}

// Enqueue adds a pending job. payload is stored as JSON.
func (q *Queue) Enqueue(ctx context.Context, queue, name string, payload any) (Job, error) {
	if queue == "" || name == "" {
		return Job{}, errors.New("queue and job name are required")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Job{}, fmt.Errorf("encode payload: %w", err)
	}
	now := q.now()
	job := Job{
		ID:        uuid.NewString(),
		Queue:     queue,
		Name:      name,
		Payload:   body,
		State:     StatePending,
		CreatedAt: now.UTC(),
	}
	_, err = q.db.ExecContext(ctx,
		`INSERT INTO jobs (id, queue, name, payload, state, available_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID, queue, name, body, StatePending, toMillis(now), toMillis(now), toMillis(now),
	)
	if err != nil {
		return Job{}, fmt.Errorf("insert job: %w", err)
	}
	job.CreatedAt = fromMillis(toMillis(now))
	return job, nil
}

// Claim marks the oldest available pending job of queue as running and
// returns it. A running job whose lease expired, left behind by a worker
// that died mid-job, counts as pending. ok is false when nothing is ready.
func (q *Queue) Claim(ctx context.Context, queue string) (job Job, ok bool, err error) {
	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return Job{}, false, fmt.Errorf("begin claim: %w", err)
	}
	defer func() {
		if err != nil || !ok {
			_ = tx.Rollback()
		}
	}()

	now := toMillis(q.now())
	stale := toMillis(q.now().Add(-q.lease))
	var created int64
	row := tx.QueryRowContext(ctx,
		`SELECT id, queue, name, payload, attempts, last_error, created_at
		   FROM jobs
		  WHERE queue = ?
		    AND ((state = ? AND available_at <= ?) OR (state = ? AND updated_at <= ?))
		  ORDER BY available_at, created_at
		  LIMIT 1`,
		queue, StatePending, now, StateRunning, stale,
	)
	if err := row.Scan(&job.ID, &job.Queue, &job.Name, &job.Payload, &job.Attempts, &job.LastError, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, false, nil
		}
		return Job{}, false, fmt.Errorf("select job: %w", err)
	}
	job.Attempts++
	job.State = StateRunning
	job.CreatedAt = fromMillis(created)

	if _, err := tx.ExecContext(ctx,
		`UPDATE jobs SET state = ?, attempts = ?, updated_at = ? WHERE id = ?`,
		StateRunning, job.Attempts, now, job.ID,
	); err != nil {
		return Job{}, false, fmt.Errorf("mark running: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Job{}, false, fmt.Errorf("commit claim: %w", err)
	}
	return job, true, nil
}

// Complete marks a job done.
func (q *Queue) Complete(ctx context.Context, id string) error {
	return q.setState(ctx, id, StateDone, "", q.now())
}

// Fail records cause. The job goes back to pending at retryAt unless it has
// used maxAttempts, in which case it is failed for good. It returns the new
// state.
func (q *Queue) Fail(ctx context.Context, job Job, cause error, maxAttempts int, retryAt time.Time) (State, error) {
	state := StatePending
	if job.Attempts >= maxAttempts {
		state = StateFailed
	}
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return state, q.setState(ctx, job.ID, state, msg, retryAt)
}

func (q *Queue) setState(ctx context.Context, id string, state State, lastErr string, availableAt time.Time) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE jobs SET state = ?, last_error = ?, available_at = ?, updated_at = ? WHERE id = ?`,
		state, lastErr, toMillis(availableAt), toMillis(q.now()), id,
	)
	if err != nil {
		return fmt.Errorf("update job %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update job %s: not found", id)
	}
	return nil
}

// Get loads a job by id.
func (q *Queue) Get(ctx context.Context, id string) (Job, error) {
	var (
		job     Job
		created int64
	)
	err := q.db.QueryRowContext(ctx,
		`SELECT id, queue, name, payload, state, attempts, last_error, created_at FROM jobs WHERE id = ?`, id,
	).Scan(&job.ID, &job.Queue, &job.Name, &job.Payload, &job.State, &job.Attempts, &job.LastError, &created)
	if err != nil {
		return Job{}, fmt.Errorf("get job %s: %w", id, err)
	}
	job.CreatedAt = fromMillis(created)
	return job, nil
}

// Counts returns the number of jobs of queue per state.
func (q *Queue) Counts(ctx context.Context, queue string) (map[State]int, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT state, COUNT(*) FROM jobs WHERE queue = ? GROUP BY state`, queue)
	if err != nil {
		return nil, fmt.Errorf("count jobs: %w", err)
	}
	defer rows.Close()

	out := make(map[State]int)
	for rows.Next() {
		var (
			s State
			n int
		)
		if err := rows.Scan(&s, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		out[s] = n
	}
	return out, rows.Err()
}
