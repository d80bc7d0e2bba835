package v1handler

import (
	"net/http"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges email/password for an access token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	session, err := h.deps.Auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, session)
}

// Signup registers a new account. When the provider requires email
// confirmation, no session is returned yet.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	res, err := h.deps.Auth.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	// best effort: make sure the profile row exists as soon as we know the
	// identity, so the first authenticated request doesn't have to
	if res.Session != nil {
		_, _ = h.deps.Accounts.Profile(r.Context(), res.User)
	}

	writeJSON(r.Context(), w, http.StatusCreated, res)
}

// Logout is a stateless acknowledgment: tokens are bearer-only and expire on
// their own.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "signed out"})
}
