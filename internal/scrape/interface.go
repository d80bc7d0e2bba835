package scrape

import (
	"context"
	"encoding/json"

	"urs/pkg/domain"
)

//go:generate mockgen -package mockscrape -source=interface.go -destination=mock/mockscrape.go *
type Service interface {
	// Enqueue validates the config, stores a pending job row and enqueues
	// the background job in the same transaction.
	Enqueue(ctx context.Context,
		userID domain.UserID,
		projectID domain.ProjectID,
		jobType domain.JobType,
		config json.RawMessage) (*domain.ScrapeJob, error)
	// Job fetches a single job owned by the user.
	Job(ctx context.Context, userID domain.UserID, jobID domain.JobID) (*domain.ScrapeJob, error)
	// ProjectJobs lists the jobs of one of the user's projects, newest first.
	ProjectJobs(ctx context.Context, userID domain.UserID, projectID domain.ProjectID) ([]domain.ScrapeJob, error)
	// Remove cancels a pending or running job, or soft-deletes a finished
	// one. It reports whether the job was cancelled rather than deleted.
	Remove(ctx context.Context, userID domain.UserID, jobID domain.JobID) (cancelled bool, err error)
}
