package worker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"urs/internal/account"
	"urs/internal/scrape"
	"urs/pkg/domain"
	"urs/pkg/logger"
	"urs/pkg/metrics"
	"urs/pkg/reddit"
	"urs/pkg/reddit/redditapi"
	"urs/pkg/storage"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// ClientFactory builds a Reddit client from a user's decrypted credentials.
// Swapped out in tests.
type ClientFactory func(creds *account.Credentials) reddit.Client

// DefaultClientFactory builds the production Reddit API client.
func DefaultClientFactory(creds *account.Credentials) reddit.Client {
	return redditapi.New(&http.Client{Timeout: 30 * time.Second},
		creds.ClientID, creds.ClientSecret, creds.Username)
}

// ScrapeJobWorker executes queued scrape jobs. It owns the whole job row
// lifecycle: pending -> running -> completed/failed, with progress writes in
// between. Cancellation is cooperative: the row's status is the single
// source of truth, and every progress write doubles as a cancellation check
// because the guarded update matches no row once the status left running.
type ScrapeJobWorker struct {
	river.WorkerDefaults[scrape.JobArgs]

	storage   storage.Storage
	accounts  account.Service
	runner    *scrape.Runner
	newClient ClientFactory
	// jobTimeout bounds a single execution; zero means no bound.
	jobTimeout time.Duration

	jobsProcessed metric.Int64Counter
	jobDuration   metric.Float64Histogram
}

// NewScrapeJobWorker constructs the worker and registers its metrics on the
// given meter provider.
func NewScrapeJobWorker(strg storage.Storage,
	accounts account.Service,
	runner *scrape.Runner,
	newClient ClientFactory,
	jobTimeout time.Duration,
	mp metric.MeterProvider) (*ScrapeJobWorker, error) {
	meter := mp.Meter("urs.worker")

	jobsProcessed, err := meter.Int64Counter("scrape_jobs_processed_total",
		metric.WithDescription("Number of scrape jobs processed, by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create jobs counter: %w", err)
	}

	jobDuration, err := meter.Float64Histogram("scrape_job_duration_seconds",
		metric.WithDescription("Wall-clock duration of scrape job executions."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create job duration histogram: %w", err)
	}

	return &ScrapeJobWorker{
		storage:       strg,
		accounts:      accounts,
		runner:        runner,
		newClient:     newClient,
		jobTimeout:    jobTimeout,
		jobsProcessed: jobsProcessed,
		jobDuration:   jobDuration,
	}, nil
}

// Work executes a single scrape job.
func (w *ScrapeJobWorker) Work(ctx context.Context, riverJob *river.Job[scrape.JobArgs]) error {
	jobID := domain.JobID(riverJob.Args.JobID)
	ctx = logger.WithFields(ctx,
		zap.Int64("riverJobID", riverJob.ID),
		zap.String("jobID", riverJob.Args.JobID.String()))

	row, err := w.storage.JobByIDAny(ctx, jobID)
	if err != nil {
		return fmt.Errorf("could not load job row: %w", err)
	}
	if row == nil {
		// row was deleted before the worker got to it
		return river.JobCancel(errors.New("job row no longer exists")) //nolint: wrapcheck
	}
	if row.Status != domain.JobStatusPending {
		// cancelled while queued, or an already-finished duplicate delivery
		return river.JobCancel(fmt.Errorf("job is %s, not pending", row.Status)) //nolint: wrapcheck
	}

	if _, err := w.storage.UpdateJob(ctx, jobID, storage.JobUpdates{
		Status: domain.JobStatusRunning,
	}); err != nil {
		return fmt.Errorf("could not mark job running: %w", err)
	}

	started := time.Now()
	outcome, err := w.run(ctx, row)
	w.jobsProcessed.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	w.jobDuration.Record(ctx, time.Since(started).Seconds(),
		metric.WithAttributes(attribute.String("outcome", outcome)))

	return err
}

// run performs the scrape and settles the row. It returns the outcome label
// for metrics alongside the error handed back to River.
func (w *ScrapeJobWorker) run(ctx context.Context, row *domain.ScrapeJob) (string, error) {
	creds, err := w.accounts.RedditCredentials(ctx, row.UserID)
	if err != nil {
		logger.Error(ctx, "could not load reddit credentials", zap.Error(err))

		return "failed", w.fail(ctx, row.ID, err)
	}

	runCtx := ctx
	if w.jobTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, w.jobTimeout)
		defer cancel()
	}

	result, err := w.runner.Run(runCtx, w.newClient(creds), row.Type, row.Config, w.progressFunc(row.ID))
	if err != nil {
		if errors.Is(err, scrape.ErrCancelled) {
			logger.Info(ctx, "job cancelled by user")

			return "cancelled", river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "scrape failed", zap.Error(err))

		return "failed", w.fail(ctx, row.ID, err)
	}

	// Re-check the status right before publishing the result so a cancel
	// that raced the final page fetch is not overwritten.
	current, err := w.storage.JobByIDAny(ctx, row.ID)
	if err != nil {
		return "failed", fmt.Errorf("could not reload job row: %w", err)
	}
	if current == nil || current.Status != domain.JobStatusRunning {
		return "cancelled", river.JobCancel(scrape.ErrCancelled) //nolint: wrapcheck
	}

	full := 100
	if _, err := w.storage.UpdateJob(ctx, row.ID, storage.JobUpdates{
		Status:   domain.JobStatusCompleted,
		Progress: &full,
		Result:   result,
	}); err != nil {
		return "failed", fmt.Errorf("could not store job result: %w", err)
	}

	logger.Info(ctx, "job completed")

	return "completed", nil
}

// progressFunc writes progress to the row. A write that matches no row means
// the job left the running state, which aborts the run.
func (w *ScrapeJobWorker) progressFunc(jobID domain.JobID) scrape.ProgressFunc {
	return func(ctx context.Context, percent int) error {
		updated, err := w.storage.SetJobProgress(ctx, jobID, percent)
		if err != nil {
			return fmt.Errorf("could not write job progress: %w", err)
		}
		if updated == nil {
			return scrape.ErrCancelled
		}

		return nil
	}
}

// fail stores the user-facing error message on the row and returns the
// original error so River records the failure.
func (w *ScrapeJobWorker) fail(ctx context.Context, jobID domain.JobID, cause error) error {
	msg := scrape.FriendlyMessage(cause)
	if _, err := w.storage.UpdateJob(ctx, jobID, storage.JobUpdates{
		Status:       domain.JobStatusFailed,
		ErrorMessage: &msg,
	}); err != nil {
		logger.Error(ctx, "could not mark job failed", zap.Error(err))
	}

	return fmt.Errorf("scrape job failed: %w", cause)
}
