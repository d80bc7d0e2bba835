// Package project implements project CRUD on top of the storage layer.
package project

import (
	"context"
	"fmt"
	"strings"

	"urs/pkg/domain"
	"urs/pkg/serrors"
	"urs/pkg/storage"
)

// maxNameLen caps project names; longer names are rejected up front.
const maxNameLen = 100

// Updates carries the optional field changes accepted from the API.
type Updates struct {
	Name        *string
	Description *string
}

// WithCounts pairs a project with its job counts for list and detail views.
type WithCounts struct {
	Project domain.Project
	Counts  domain.JobCounts
}

//go:generate mockgen -package mockproject -source=project.go -destination=mock/mockproject.go *
type Service interface {
	// Create stores a new project for the user.
	Create(ctx context.Context, userID domain.UserID, name, description string) (*domain.Project, error)
	// List returns the user's projects, newest first, with job counts.
	List(ctx context.Context, userID domain.UserID) ([]WithCounts, error)
	// Get fetches a single project with its job counts.
	Get(ctx context.Context, userID domain.UserID, id domain.ProjectID) (*WithCounts, error)
	// Update applies the given changes and returns the updated project.
	Update(ctx context.Context, userID domain.UserID, id domain.ProjectID, updates Updates) (*domain.Project, error)
	// Delete soft-deletes the project together with its jobs.
	Delete(ctx context.Context, userID domain.UserID, id domain.ProjectID) error
}

type service struct {
	storage storage.Storage
}

// New creates a project service backed by the provided storage.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}

func (s *service) Create(ctx context.Context,
	userID domain.UserID,
	name, description string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "project name is required")
	}
	if len(name) > maxNameLen {
		return nil, serrors.With(serrors.ErrBadRequest,
			"project name must be at most %d characters", maxNameLen)
	}

	proj, err := s.storage.StoreProject(ctx, domain.Project{
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create project: %w", err)
	}

	return proj, nil
}

func (s *service) List(ctx context.Context, userID domain.UserID) ([]WithCounts, error) {
	rows, err := s.storage.UserProjects(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list projects: %w", err)
	}

	out := make([]WithCounts, 0, len(rows))
	for _, row := range rows {
		out = append(out, WithCounts{Project: row.Project, Counts: row.Counts})
	}

	return out, nil
}

func (s *service) Get(ctx context.Context, userID domain.UserID, id domain.ProjectID) (*WithCounts, error) {
	proj, err := s.storage.ProjectByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if proj == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}

	counts, err := s.storage.ProjectJobCounts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not count project jobs: %w", err)
	}

	return &WithCounts{Project: *proj, Counts: counts}, nil
}

func (s *service) Update(ctx context.Context,
	userID domain.UserID,
	id domain.ProjectID,
	updates Updates) (*domain.Project, error) {
	if updates.Name != nil {
		trimmed := strings.TrimSpace(*updates.Name)
		if trimmed == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "project name is required")
		}
		if len(trimmed) > maxNameLen {
			return nil, serrors.With(serrors.ErrBadRequest,
				"project name must be at most %d characters", maxNameLen)
		}
		updates.Name = &trimmed
	}

	proj, err := s.storage.UpdateProject(ctx, userID, id, storage.ProjectUpdates{
		Name:        updates.Name,
		Description: updates.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update project: %w", err)
	}
	if proj == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}

	return proj, nil
}

func (s *service) Delete(ctx context.Context, userID domain.UserID, id domain.ProjectID) error {
	// the project row and the job cascade must land atomically
	var proj *domain.Project
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteProject(ctx, userID, id)
		if err != nil {
			return err //nolint: wrapcheck
		}
		proj = deleted

		return nil
	}); err != nil {
		return fmt.Errorf("could not delete project: %w", err)
	}
	if proj == nil {
		return serrors.With(serrors.ErrNotFound, "project not found")
	}

	return nil
}
