package storage

import (
	"context"

	"urs/pkg/domain"
)

// ProfileUpdates describes optional fields applied to a profile during an
// update. Only non-nil fields are written. Credential values must already be
// encrypted envelopes; the storage layer never sees plaintext secrets.
type ProfileUpdates struct {
	Email              *string
	RedditClientID     *string
	RedditClientSecret *string
	RedditUsername     *string
}

// ProfileStorage defines persistence operations for user profiles. The
// credential fields on returned profiles hold the stored (encrypted)
// representation.
type ProfileStorage interface {
	// Profile fetches a profile by user ID. Returns nil when not found.
	Profile(ctx context.Context, id domain.UserID) (*domain.Profile, error)
	// StoreProfile inserts a profile row and returns it as stored. Inserting
	// an existing ID is a no-op returning the current row, so first-access
	// creation is idempotent.
	StoreProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
	// UpdateProfile applies the provided field set and returns the updated
	// row, or nil when the profile does not exist.
	UpdateProfile(ctx context.Context, id domain.UserID, updates ProfileUpdates) (*domain.Profile, error)
}
