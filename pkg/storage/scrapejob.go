package storage

import (
	"context"
	"encoding/json"

	"urs/pkg/domain"
)

// JobUpdates describes optional fields applied to a scrape job during an
// update. Only provided fields are written; updated timestamps follow status
// transitions (running sets started_at, terminal statuses set completed_at).
type JobUpdates struct {
	// Status is the new status to set; empty leaves it unchanged.
	Status domain.JobStatus
	// Progress, when provided, replaces the progress percentage.
	Progress *int
	// ErrorMessage, when provided, sets the user-facing failure description.
	ErrorMessage *string
	// Result, when provided, replaces the stored result payload.
	Result json.RawMessage
}

// ScrapeJobStorage defines CRUD and query operations for scrape jobs. Reads
// exclude soft-deleted rows.
type ScrapeJobStorage interface {
	// StoreJob inserts a job row and returns it as stored.
	StoreJob(ctx context.Context, job domain.ScrapeJob) (*domain.ScrapeJob, error)
	// JobByID fetches a job owned by the given user. Returns nil when not found.
	JobByID(ctx context.Context, userID domain.UserID, id domain.JobID) (*domain.ScrapeJob, error)
	// JobByIDAny fetches a job regardless of owner. Used by workers and
	// share-token resolution, which authorize differently.
	JobByIDAny(ctx context.Context, id domain.JobID) (*domain.ScrapeJob, error)
	// ProjectJobs returns all jobs of a project, newest first.
	ProjectJobs(ctx context.Context, projectID domain.ProjectID) ([]domain.ScrapeJob, error)
	// UpdateJob applies the provided field set and returns the updated row,
	// or nil when the job does not exist.
	UpdateJob(ctx context.Context, id domain.JobID, updates JobUpdates) (*domain.ScrapeJob, error)
	// CancelJob flips a pending or running job to cancelled and returns the
	// updated row. It returns nil when the job is missing or already
	// terminal, so a cancel can never overwrite a published result.
	CancelJob(ctx context.Context, id domain.JobID) (*domain.ScrapeJob, error)
	// SetJobProgress writes the progress column of a running job and returns
	// the updated row. It returns nil when the job is no longer running,
	// which is how workers observe cooperative cancellation.
	SetJobProgress(ctx context.Context, id domain.JobID, progress int) (*domain.ScrapeJob, error)
	// DeleteJob soft-deletes a job owned by the given user and returns it,
	// or nil when not found.
	DeleteJob(ctx context.Context, userID domain.UserID, id domain.JobID) (*domain.ScrapeJob, error)
}
