package postgres

import (
	"context"
	"fmt"

	"urs/pkg/domain"
	"urs/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const projectsTable = "projects"

// StoreProject inserts a project and returns the stored row including
// generated columns.
func (p *PgSQL) StoreProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	var row PgProject
	row.FromDomain(project)

	var stored PgProject
	found, err := p.Builder.Insert(projectsTable).
		Rows(row).
		Returning(&PgProject{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store project into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store project into pg: no row returned")
	}

	return stored.ToDomain(), nil
}

// UserProjects returns the user's projects, newest first, each with per-status
// job counts aggregated in a single grouped query.
func (p *PgSQL) UserProjects(ctx context.Context, userID domain.UserID) ([]storage.ProjectWithCounts, error) {
	var rows []PgProject
	err := p.Builder.From(projectsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not fetch projects from pg: %w", err)
	}

	countsByProject, err := p.jobCountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]storage.ProjectWithCounts, 0, len(rows))
	for i := range rows {
		out = append(out, storage.ProjectWithCounts{
			Project: *rows[i].ToDomain(),
			Counts:  countsByProject[rows[i].ID],
		})
	}

	return out, nil
}

type jobCountRow struct {
	ProjectID uuid.UUID `db:"project_id"`
	Status    string    `db:"status"`
	Count     int       `db:"count"`
}

func (p *PgSQL) jobCountsByUser(ctx context.Context, userID domain.UserID) (map[uuid.UUID]domain.JobCounts, error) {
	var rows []jobCountRow
	err := p.Builder.From(scrapeJobsTable).
		Select(
			goqu.I("project_id"),
			goqu.I("status"),
			goqu.COUNT(goqu.Star()).As("count"),
		).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		GroupBy(goqu.I("project_id"), goqu.I("status")).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not aggregate job counts from pg: %w", err)
	}

	out := make(map[uuid.UUID]domain.JobCounts, len(rows))
	for _, row := range rows {
		counts := out[row.ProjectID]
		counts.Add(domain.JobStatus(row.Status), row.Count)
		out[row.ProjectID] = counts
	}

	return out, nil
}

// ProjectByID fetches a project owned by the given user. Returns nil when not
// found or soft-deleted.
func (p *PgSQL) ProjectByID(ctx context.Context,
	userID domain.UserID,
	id domain.ProjectID) (*domain.Project, error) {
	var row PgProject
	found, err := p.Builder.From(projectsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch project from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// ProjectJobCounts aggregates the project's jobs by status.
func (p *PgSQL) ProjectJobCounts(ctx context.Context, id domain.ProjectID) (domain.JobCounts, error) {
	var rows []jobCountRow
	err := p.Builder.From(scrapeJobsTable).
		Select(
			goqu.I("project_id"),
			goqu.I("status"),
			goqu.COUNT(goqu.Star()).As("count"),
		).
		Where(
			goqu.I("project_id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		GroupBy(goqu.I("project_id"), goqu.I("status")).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return domain.JobCounts{}, fmt.Errorf("could not aggregate job counts from pg: %w", err)
	}

	var counts domain.JobCounts
	for _, row := range rows {
		counts.Add(domain.JobStatus(row.Status), row.Count)
	}

	return counts, nil
}

// UpdateProject applies the provided field set to a project owned by the
// given user and returns the updated row, or nil when not found.
func (p *PgSQL) UpdateProject(ctx context.Context,
	userID domain.UserID,
	id domain.ProjectID,
	updates storage.ProjectUpdates) (*domain.Project, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}

	var row PgProject
	found, err := p.Builder.Update(projectsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgProject{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update project in pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// DeleteProject soft-deletes the project and all of its jobs. Returns the
// deleted project, or nil when not found.
func (p *PgSQL) DeleteProject(ctx context.Context,
	userID domain.UserID,
	id domain.ProjectID) (*domain.Project, error) {
	var row PgProject
	found, err := p.Builder.Update(projectsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgProject{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete project in pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	// cascade to the project's jobs
	_, err = p.Builder.Update(scrapeJobsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("project_id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not delete project jobs in pg: %w", err)
	}

	return row.ToDomain(), nil
}
