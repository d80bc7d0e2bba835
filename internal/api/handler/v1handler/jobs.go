package v1handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"urs/internal/export"
	"urs/pkg/domain"
	"urs/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// streamPollInterval is how often the SSE stream re-reads the job row.
const streamPollInterval = time.Second

func jobIDFromRequest(r *http.Request) (domain.JobID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		return domain.JobID{}, serrors.With(serrors.ErrBadRequest, "invalid job ID")
	}

	return domain.JobID(id), nil
}

type createJobRequest struct {
	JobType domain.JobType  `json:"jobType"`
	Config  json.RawMessage `json:"config"`
}

// CreateJob stores a pending scrape job and enqueues it.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	projectID, err := projectIDFromRequest(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	var req createJobRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}
	if len(req.Config) == 0 {
		writeError(r.Context(), w, serrors.With(serrors.ErrBadRequest, "config is required"))

		return
	}

	job, err := h.deps.Scrapes.Enqueue(r.Context(), GetUserFromContext(r.Context()).ID,
		projectID, req.JobType, req.Config)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, job)
}

// ListProjectJobs returns the jobs of a project, newest first.
func (h *Handler) ListProjectJobs(w http.ResponseWriter, r *http.Request) {
	projectID, err := projectIDFromRequest(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	jobs, err := h.deps.Scrapes.ProjectJobs(r.Context(), GetUserFromContext(r.Context()).ID, projectID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, jobs)
}

// GetJob returns a job including progress and, once completed, the result.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := jobIDFromRequest(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	job, err := h.deps.Scrapes.Job(r.Context(), GetUserFromContext(r.Context()).ID, jobID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, job)
}

// jobProgressEvent is the SSE payload; small on purpose, the client fetches
// the full job (with result) once a terminal status arrives.
type jobProgressEvent struct {
	ID           domain.JobID     `json:"id"`
	Status       domain.JobStatus `json:"status"`
	Progress     int              `json:"progress"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
}

// StreamJob emits the job's status and progress as server-sent events once a
// second until the job reaches a terminal state or the client goes away.
func (h *Handler) StreamJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := jobIDFromRequest(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(r.Context(), w, serrors.With(serrors.ErrInternal, "streaming unsupported"))

		return
	}

	userID := GetUserFromContext(r.Context()).ID

	// first read also validates ownership before committing to the stream
	job, err := h.deps.Scrapes.Job(r.Context(), userID, jobID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ticker := time.NewTicker(streamPollInterval)
	defer ticker.Stop()

	for {
		if err := writeEvent(w, flusher, job); err != nil {
			return
		}
		if job.Status.Terminal() {
			return
		}

		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}

		job, err = h.deps.Scrapes.Job(r.Context(), userID, jobID)
		if err != nil {
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, job *domain.ScrapeJob) error {
	payload, err := json.Marshal(jobProgressEvent{
		ID:           job.ID,
		Status:       job.Status,
		Progress:     job.Progress,
		ErrorMessage: job.ErrorMessage,
	})
	if err != nil {
		return fmt.Errorf("could not encode event: %w", err)
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return fmt.Errorf("could not write event: %w", err)
	}
	flusher.Flush()

	return nil
}

// DeleteJob cancels a pending/running job or soft-deletes a finished one.
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := jobIDFromRequest(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	cancelled, err := h.deps.Scrapes.Remove(r.Context(), GetUserFromContext(r.Context()).ID, jobID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	if cancelled {
		writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "cancelled"})

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportJob streams the rendered result as a download. Auth may come via
// the ?token= query because browsers cannot set headers on navigation.
func (h *Handler) ExportJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := jobIDFromRequest(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	job, err := h.deps.Scrapes.Job(r.Context(), GetUserFromContext(r.Context()).ID, jobID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	file, err := export.Render(*job, format)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	_, _ = w.Write(file.Content)
}
