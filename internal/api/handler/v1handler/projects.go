package v1handler

import (
	"net/http"

	"urs/internal/project"
	"urs/pkg/domain"
	"urs/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxProjectNameLen bounds project names the same way the SPA does.
const maxProjectNameLen = 100

type projectResponse struct {
	domain.Project
	JobCounts domain.JobCounts `json:"jobCounts"`
}

func projectIDFromRequest(r *http.Request) (domain.ProjectID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		return domain.ProjectID{}, serrors.With(serrors.ErrBadRequest, "invalid project ID")
	}

	return domain.ProjectID(id), nil
}

// ListProjects returns the caller's projects with job counts.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	rows, err := h.deps.Projects.List(r.Context(), GetUserFromContext(r.Context()).ID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	out := make([]projectResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, projectResponse{Project: row.Project, JobCounts: row.Counts})
	}

	writeJSON(r.Context(), w, http.StatusOK, out)
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateProject creates a project.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}
	if len(req.Name) > maxProjectNameLen {
		writeError(r.Context(), w,
			serrors.With(serrors.ErrBadRequest, "project name must be at most %d characters", maxProjectNameLen))

		return
	}

	proj, err := h.deps.Projects.Create(r.Context(), GetUserFromContext(r.Context()).ID,
		req.Name, req.Description)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, projectResponse{Project: *proj})
}

// GetProject fetches one project with job counts.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDFromRequest(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	row, err := h.deps.Projects.Get(r.Context(), GetUserFromContext(r.Context()).ID, id)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, projectResponse{Project: row.Project, JobCounts: row.Counts})
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateProject partially updates name/description.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDFromRequest(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	var req updateProjectRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}
	if req.Name != nil && len(*req.Name) > maxProjectNameLen {
		writeError(r.Context(), w,
			serrors.With(serrors.ErrBadRequest, "project name must be at most %d characters", maxProjectNameLen))

		return
	}

	proj, err := h.deps.Projects.Update(r.Context(), GetUserFromContext(r.Context()).ID, id,
		project.Updates{
			Name:        req.Name,
			Description: req.Description,
		})
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, projectResponse{Project: *proj})
}

// DeleteProject removes a project and its jobs.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDFromRequest(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	if err := h.deps.Projects.Delete(r.Context(), GetUserFromContext(r.Context()).ID, id); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
