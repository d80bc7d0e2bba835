package v1handler

import (
	"errors"
	"net/http"
	"time"

	"urs/internal/account"
	"urs/pkg/domain"
	"urs/pkg/serrors"
)

// profileResponse never carries the credential secrets, only whether they
// are configured.
type profileResponse struct {
	ID                   domain.UserID `json:"id"`
	Email                string        `json:"email"`
	RedditUsername       string        `json:"redditUsername,omitempty"`
	HasRedditCredentials bool          `json:"hasRedditCredentials"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt,omitzero"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:                   p.ID,
		Email:                p.Email,
		RedditUsername:       p.RedditUsername,
		HasRedditCredentials: p.HasRedditCredentials(),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

// GetProfile returns the caller's profile, creating it on first access.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.deps.Accounts.Profile(r.Context(), GetUserFromContext(r.Context()))
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, toProfileResponse(profile))
}

type updateProfileRequest struct {
	RedditClientID     *string `json:"redditClientId"`
	RedditClientSecret *string `json:"redditClientSecret"`
	RedditUsername     *string `json:"redditUsername"`
}

// UpdateProfile applies partial changes to the caller's Reddit credentials.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	profile, err := h.deps.Accounts.UpdateProfile(r.Context(), GetUserFromContext(r.Context()),
		account.ProfileUpdates{
			RedditClientID:     req.RedditClientID,
			RedditClientSecret: req.RedditClientSecret,
			RedditUsername:     req.RedditUsername,
		})
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, toProfileResponse(profile))
}

type redditCredentialsResponse struct {
	RedditClientID     string `json:"redditClientId"`
	RedditClientSecret string `json:"redditClientSecret"`
	RedditUsername     string `json:"redditUsername,omitempty"`
}

// GetRedditCredentials returns the decrypted credential set for the settings
// form. 404 when none are configured.
func (h *Handler) GetRedditCredentials(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	creds, err := h.deps.Accounts.RedditCredentials(r.Context(), user.ID)
	if err != nil {
		// the account service reports missing credentials as a bad request
		// for job execution; here absence is a 404
		if errors.Is(err, serrors.ErrBadRequest) {
			writeError(r.Context(), w, serrors.With(serrors.ErrNotFound, "Reddit credentials are not configured"))

			return
		}
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, redditCredentialsResponse{
		RedditClientID:     creds.ClientID,
		RedditClientSecret: creds.ClientSecret,
		RedditUsername:     creds.Username,
	})
}
