package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// QueueStorage defines the minimal interface for enqueueing background jobs.
// Implementations are responsible for persisting the job into the underlying
// queue backend. The args parameter contains the job payload and opts can be
// used to customize insertion behavior (e.g. queue name, delay, priority).
//
// Enqueueing is expected to be atomic with respect to any surrounding
// transaction when the backend supports it; this is what keeps a scrape_jobs
// row and its queue entry consistent.
type QueueStorage interface {
	// AddJob enqueues a new background job with the given arguments. The
	// boolean result reports whether a job was actually inserted (false when
	// uniqueness constraints deduplicated it).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
