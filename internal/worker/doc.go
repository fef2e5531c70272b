// Package worker runs the settlement worker: a polling loop over a durable
// SQLite job queue.
//
// Jobs are claimed oldest first, retried with a linear backoff and failed
// for good after MaxAttempts. The default handler only logs; settlement
// itself is left to the contracts.
package worker
