// Package v1handler implements the versioned REST API on top of the
// application services. Handlers stay thin: decode, call a service, encode.
package v1handler

import (
	"net/http"
	"time"

	"urs/internal/account"
	"urs/internal/auth"
	"urs/internal/project"
	"urs/internal/scrape"
	"urs/internal/share"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Deps are the application services the handlers delegate to.
type Deps struct {
	Auth     auth.Service
	Accounts account.Service
	Projects project.Service
	Scrapes  scrape.Service
	Shares   share.Service
}

type Handler struct {
	deps Deps
	sec  *SecHandler
	// shareBaseURL is the origin prepended to public share paths, usually
	// the frontend origin. Empty yields relative URLs.
	shareBaseURL string
}

// New constructs the v1 handler set.
func New(deps Deps, sec *SecHandler, shareBaseURL string) *Handler {
	return &Handler{
		deps:         deps,
		sec:          sec,
		shareBaseURL: shareBaseURL,
	}
}

// Routes assembles the /api router. Everything under the authenticated
// subtree goes through the bearer-token middleware; health, auth and the
// public share resolver do not. requestTimeout bounds every route except
// the progress stream, which holds its response open.
func (h *Handler) Routes(requestTimeout time.Duration) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		if requestTimeout > 0 {
			r.Use(middleware.Timeout(requestTimeout))
		}

		r.Get("/health", h.Health)

		r.Post("/auth/login", h.Login)
		r.Post("/auth/signup", h.Signup)
		r.Post("/auth/logout", h.Logout)

		r.Get("/share/{token}", h.ResolveShare)

		r.Group(func(r chi.Router) {
			r.Use(h.sec.Middleware)

			r.Get("/profile", h.GetProfile)
			r.Patch("/profile", h.UpdateProfile)
			r.Get("/profile/reddit-credentials", h.GetRedditCredentials)

			r.Get("/projects", h.ListProjects)
			r.Post("/projects", h.CreateProject)
			r.Get("/projects/{projectID}", h.GetProject)
			r.Patch("/projects/{projectID}", h.UpdateProject)
			r.Delete("/projects/{projectID}", h.DeleteProject)

			r.Get("/projects/{projectID}/jobs", h.ListProjectJobs)
			r.Post("/projects/{projectID}/jobs", h.CreateJob)

			r.Get("/jobs/{jobID}", h.GetJob)
			r.Delete("/jobs/{jobID}", h.DeleteJob)
			r.Get("/jobs/{jobID}/export", h.ExportJob)
			r.Post("/jobs/{jobID}/share", h.CreateShare)

			r.Get("/shares", h.ListShares)
			r.Delete("/shares/{shareID}", h.RevokeShare)
		})
	})

	r.With(h.sec.Middleware).Get("/jobs/{jobID}/stream", h.StreamJob)

	return r
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
