package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// User is the authenticated identity extracted from a verified bearer token.
type User struct {
	ID    UserID `json:"id"`
	Email string `json:"email"`
}

// Profile holds per-user settings, most importantly the Reddit API
// credentials used by the background workers. The credential fields carry
// the stored encrypted envelopes when loaded from storage; only the account
// service decrypts them, and the values never appear in API responses.
type Profile struct {
	ID    UserID `json:"id"`
	Email string `json:"email"`

	// RedditClientID and RedditClientSecret are the user's Reddit API
	// application credentials.
	RedditClientID     string `json:"-"`
	RedditClientSecret string `json:"-"`
	// RedditUsername is embedded into the User-Agent sent to Reddit.
	RedditUsername string `json:"redditUsername,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasRedditCredentials reports whether the profile carries a usable set of
// Reddit API credentials.
func (p Profile) HasRedditCredentials() bool {
	return p.RedditClientID != "" && p.RedditClientSecret != ""
}
