package postgres

import (
	"context"
	"fmt"

	"urs/pkg/domain"
	"urs/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const scrapeJobsTable = "scrape_jobs"

// StoreJob inserts a job row and returns it as stored.
func (p *PgSQL) StoreJob(ctx context.Context, job domain.ScrapeJob) (*domain.ScrapeJob, error) {
	var row PgScrapeJob
	row.FromDomain(job)

	var stored PgScrapeJob
	found, err := p.Builder.Insert(scrapeJobsTable).
		Rows(row).
		Returning(&PgScrapeJob{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store scrape job into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store scrape job into pg: no row returned")
	}

	return stored.ToDomain(), nil
}

// JobByID fetches a job owned by the given user. Returns nil when not found.
func (p *PgSQL) JobByID(ctx context.Context,
	userID domain.UserID,
	id domain.JobID) (*domain.ScrapeJob, error) {
	var row PgScrapeJob
	found, err := p.Builder.From(scrapeJobsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scrape job from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// JobByIDAny fetches a job regardless of owner. Workers and share-token
// resolution authorize by other means.
func (p *PgSQL) JobByIDAny(ctx context.Context, id domain.JobID) (*domain.ScrapeJob, error) {
	var row PgScrapeJob
	found, err := p.Builder.From(scrapeJobsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scrape job from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// ProjectJobs returns all jobs of a project, newest first.
func (p *PgSQL) ProjectJobs(ctx context.Context, projectID domain.ProjectID) ([]domain.ScrapeJob, error) {
	var rows []PgScrapeJob
	err := p.Builder.From(scrapeJobsTable).
		Where(
			goqu.I("project_id").Eq(uuid.UUID(projectID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scrape jobs from pg: %w", err)
	}

	return pgJobsToDomain(rows), nil
}

// UpdateJob applies the provided field set and returns the updated row, or
// nil when the job does not exist. Status transitions maintain the lifecycle
// timestamps: moving to running sets started_at, terminal statuses set
// completed_at.
func (p *PgSQL) UpdateJob(ctx context.Context,
	id domain.JobID,
	updates storage.JobUpdates) (*domain.ScrapeJob, error) {
	rec := goqu.Record{}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
		if updates.Status == domain.JobStatusRunning {
			rec["started_at"] = goqu.L("CURRENT_TIMESTAMP")
		}
		if updates.Status.Terminal() {
			rec["completed_at"] = goqu.L("CURRENT_TIMESTAMP")
		}
	}
	if updates.Progress != nil {
		rec["progress"] = *updates.Progress
	}
	if updates.ErrorMessage != nil {
		rec["error_message"] = *updates.ErrorMessage
	}
	if updates.Result != nil {
		rec["result"] = []byte(updates.Result)
	}
	if len(rec) == 0 {
		return p.JobByIDAny(ctx, id)
	}

	var row PgScrapeJob
	found, err := p.Builder.Update(scrapeJobsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgScrapeJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update scrape job in pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// SetJobProgress writes the progress column of a running job and returns the
// updated row. The update is guarded on status so a concurrent cancel wins:
// when no row matches, nil is returned and the worker stops.
// CancelJob cancels a job guarded on it still being pending or running, so a
// concurrent terminal write always wins over the cancel.
func (p *PgSQL) CancelJob(ctx context.Context, id domain.JobID) (*domain.ScrapeJob, error) {
	var row PgScrapeJob
	found, err := p.Builder.Update(scrapeJobsTable).
		Set(goqu.Record{
			"status":       string(domain.JobStatusCancelled),
			"completed_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").In(string(domain.JobStatusPending), string(domain.JobStatusRunning)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgScrapeJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not cancel scrape job in pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) SetJobProgress(ctx context.Context, id domain.JobID, progress int) (*domain.ScrapeJob, error) {
	var row PgScrapeJob
	found, err := p.Builder.Update(scrapeJobsTable).
		Set(goqu.Record{
			"progress": progress,
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(domain.JobStatusRunning)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgScrapeJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update scrape job progress in pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// DeleteJob soft-deletes a job owned by the given user and returns it, or nil
// when not found.
func (p *PgSQL) DeleteJob(ctx context.Context,
	userID domain.UserID,
	id domain.JobID) (*domain.ScrapeJob, error) {
	var row PgScrapeJob
	found, err := p.Builder.Update(scrapeJobsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgScrapeJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete scrape job in pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}
