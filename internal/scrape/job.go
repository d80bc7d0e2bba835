package scrape

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

// JobArgs contains the arguments for a scrape job submitted to River. Only
// the row ID travels through the queue; everything else is read back from
// the scrape_jobs row when the worker picks it up.
type JobArgs struct {
	JobID uuid.UUID `json:"job_id"`
}

// Kind returns the River job kind used to register and dispatch the scrape worker.
func (args JobArgs) Kind() string { return "ScrapeJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// Scrape jobs are never retried: a failed run already wrote its error to the
// row and the user decides whether to resubmit.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
	}
}
