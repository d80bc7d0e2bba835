package v1handler

import (
	"net/http"
	"strings"

	"urs/pkg/domain"
	"urs/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type shareLinkResponse struct {
	domain.ShareLink
	// URL is the public link handed to the user.
	URL string `json:"url"`
}

func (h *Handler) shareURL(token string) string {
	base := strings.TrimSuffix(h.shareBaseURL, "/")

	return base + "/share/" + token
}

// CreateShare issues (or returns the existing) share link for a completed job.
func (h *Handler) CreateShare(w http.ResponseWriter, r *http.Request) {
	jobID, err := jobIDFromRequest(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	link, err := h.deps.Shares.Create(r.Context(), GetUserFromContext(r.Context()).ID, jobID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, shareLinkResponse{
		ShareLink: *link,
		URL:       h.shareURL(link.Token),
	})
}

// ListShares returns the caller's share links.
func (h *Handler) ListShares(w http.ResponseWriter, r *http.Request) {
	links, err := h.deps.Shares.List(r.Context(), GetUserFromContext(r.Context()).ID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	out := make([]shareLinkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, shareLinkResponse{
			ShareLink: link,
			URL:       h.shareURL(link.Token),
		})
	}

	writeJSON(r.Context(), w, http.StatusOK, out)
}

// RevokeShare permanently deactivates a share link.
func (h *Handler) RevokeShare(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "shareID"))
	if err != nil {
		writeError(r.Context(), w, serrors.With(serrors.ErrBadRequest, "invalid share link ID"))

		return
	}

	if err := h.deps.Shares.Revoke(r.Context(), GetUserFromContext(r.Context()).ID,
		domain.ShareLinkID(id)); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ResolveShare is the public, unauthenticated view of a shared result.
func (h *Handler) ResolveShare(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		writeError(r.Context(), w, serrors.With(serrors.ErrNotFound, "share link not found"))

		return
	}

	result, err := h.deps.Shares.Resolve(r.Context(), token)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, result)
}
