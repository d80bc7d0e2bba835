// Package scrape implements the scrape job lifecycle: validation,
// enqueueing, cancellation and the runner executed by the background
// workers.
package scrape

import (
	"context"
	"encoding/json"
	"fmt"

	"urs/pkg/domain"
	"urs/pkg/serrors"
	"urs/pkg/storage"

	"github.com/google/uuid"
)

type service struct {
	storage storage.Storage
}

// New creates a scrape service backed by the provided storage.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}

// Enqueue stores a new pending job and submits it to the queue inside one
// transaction, so a crash between the two cannot leave an orphaned row or a
// queue entry without a row.
func (s *service) Enqueue(ctx context.Context,
	userID domain.UserID,
	projectID domain.ProjectID,
	jobType domain.JobType,
	config json.RawMessage) (*domain.ScrapeJob, error) {
	if !jobType.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown job type: %q", jobType)
	}

	normalized, err := domain.NormalizeJobConfig(jobType, config)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid job config")
	}

	proj, err := s.storage.ProjectByID(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if proj == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}

	var job *domain.ScrapeJob
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreJob(ctx, domain.ScrapeJob{
			ProjectID: projectID,
			UserID:    userID,
			Type:      jobType,
			Config:    normalized,
			Status:    domain.JobStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store job: %w", err)
		}
		job = stored

		if _, err := tx.AddJob(ctx, JobArgs{JobID: uuid.UUID(stored.ID)}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue scrape job: %w", err)
	}

	return job, nil
}

func (s *service) Job(ctx context.Context, userID domain.UserID, jobID domain.JobID) (*domain.ScrapeJob, error) {
	job, err := s.storage.JobByID(ctx, userID, jobID)
	if err != nil {
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	return job, nil
}

func (s *service) ProjectJobs(ctx context.Context,
	userID domain.UserID,
	projectID domain.ProjectID) ([]domain.ScrapeJob, error) {
	proj, err := s.storage.ProjectByID(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if proj == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}

	jobs, err := s.storage.ProjectJobs(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not list project jobs: %w", err)
	}

	return jobs, nil
}

// Remove cancels a pending or running job by flipping its status; the worker
// notices the status change on its next progress write and stops. Finished
// jobs are soft-deleted instead.
func (s *service) Remove(ctx context.Context, userID domain.UserID, jobID domain.JobID) (bool, error) {
	job, err := s.storage.JobByID(ctx, userID, jobID)
	if err != nil {
		return false, fmt.Errorf("could not get job: %w", err)
	}
	if job == nil {
		return false, serrors.With(serrors.ErrNotFound, "job not found")
	}

	if job.Status == domain.JobStatusPending || job.Status == domain.JobStatusRunning {
		cancelled, err := s.storage.CancelJob(ctx, jobID)
		if err != nil {
			return false, fmt.Errorf("could not cancel job: %w", err)
		}
		if cancelled != nil {
			return true, nil
		}
		// the job reached a terminal status between the read and the write;
		// fall through to the delete path
	}

	if _, err := s.storage.DeleteJob(ctx, userID, jobID); err != nil {
		return false, fmt.Errorf("could not delete job: %w", err)
	}

	return false, nil
}
