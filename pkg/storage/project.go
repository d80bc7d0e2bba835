package storage

import (
	"context"

	"urs/pkg/domain"
)

// ProjectUpdates describes optional fields applied to a project during an
// update. Only non-nil fields are written; updated_at is set automatically.
type ProjectUpdates struct {
	Name        *string
	Description *string
}

// ProjectWithCounts pairs a project with the per-status counts of its jobs.
type ProjectWithCounts struct {
	Project domain.Project
	Counts  domain.JobCounts
}

// ProjectStorage defines CRUD and query operations for projects. All reads
// exclude soft-deleted rows and deletes are soft.
type ProjectStorage interface {
	// StoreProject inserts a project and returns the stored row (including
	// generated fields).
	StoreProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	// UserProjects returns the user's projects, newest first, each with job
	// counts by status.
	UserProjects(ctx context.Context, userID domain.UserID) ([]ProjectWithCounts, error)
	// ProjectByID fetches a project owned by the given user. Returns nil
	// when not found.
	ProjectByID(ctx context.Context, userID domain.UserID, id domain.ProjectID) (*domain.Project, error)
	// ProjectJobCounts aggregates the project's jobs by status.
	ProjectJobCounts(ctx context.Context, id domain.ProjectID) (domain.JobCounts, error)
	// UpdateProject applies the provided field set to a project owned by the
	// given user and returns the updated row, or nil when not found.
	UpdateProject(ctx context.Context,
		userID domain.UserID,
		id domain.ProjectID,
		updates ProjectUpdates) (*domain.Project, error)
	// DeleteProject soft-deletes the project and all its jobs, returning the
	// deleted project or nil when not found.
	DeleteProject(ctx context.Context, userID domain.UserID, id domain.ProjectID) (*domain.Project, error)
}
