package storage

import (
	"context"

	"urs/pkg/domain"
)

// ShareLinkStorage defines persistence operations for public share links.
// Revocation deactivates a link; rows are never deleted so a leaked token
// stays dead.
type ShareLinkStorage interface {
	// StoreShareLink inserts a share link and returns it as stored.
	StoreShareLink(ctx context.Context, link domain.ShareLink) (*domain.ShareLink, error)
	// ActiveShareLinkByJob returns the active link for a job, or nil.
	ActiveShareLinkByJob(ctx context.Context, jobID domain.JobID) (*domain.ShareLink, error)
	// ShareLinkByToken resolves an active link by its public token, or nil.
	ShareLinkByToken(ctx context.Context, token string) (*domain.ShareLink, error)
	// ShareLinkByID fetches a link by ID regardless of state, or nil.
	ShareLinkByID(ctx context.Context, id domain.ShareLinkID) (*domain.ShareLink, error)
	// UserShareLinks returns all links whose jobs belong to the given user,
	// newest first.
	UserShareLinks(ctx context.Context, userID domain.UserID) ([]domain.ShareLink, error)
	// RevokeShareLink deactivates a link and returns the updated row, or nil
	// when not found.
	RevokeShareLink(ctx context.Context, id domain.ShareLinkID) (*domain.ShareLink, error)
}
