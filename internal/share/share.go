// Package share issues and resolves public share links for completed scrape
// jobs.
package share

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"urs/pkg/domain"
	"urs/pkg/serrors"
	"urs/pkg/storage"
)

// tokenBytes is the entropy of a share token before encoding.
const tokenBytes = 16

//go:generate mockgen -package mockshare -source=share.go -destination=mock/mockshare.go *
type Service interface {
	// Create issues a share link for one of the user's completed jobs. When
	// an active link already exists it is returned instead of minting a
	// second token.
	Create(ctx context.Context, userID domain.UserID, jobID domain.JobID) (*domain.ShareLink, error)
	// List returns the user's share links, newest first.
	List(ctx context.Context, userID domain.UserID) ([]domain.ShareLink, error)
	// Revoke permanently deactivates one of the user's links.
	Revoke(ctx context.Context, userID domain.UserID, id domain.ShareLinkID) error
	// Resolve returns the public view of the job behind an active token.
	Resolve(ctx context.Context, token string) (*domain.SharedResult, error)
}

type service struct {
	storage storage.Storage
}

// New creates a share service backed by the provided storage.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}

func (s *service) Create(ctx context.Context, userID domain.UserID, jobID domain.JobID) (*domain.ShareLink, error) {
	job, err := s.storage.JobByID(ctx, userID, jobID)
	if err != nil {
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}
	if job.Status != domain.JobStatusCompleted {
		return nil, serrors.With(serrors.ErrBadRequest, "only completed jobs can be shared")
	}

	existing, err := s.storage.ActiveShareLinkByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("could not get share link: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	link, err := s.storage.StoreShareLink(ctx, domain.ShareLink{
		JobID:    jobID,
		Token:    token,
		IsActive: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store share link: %w", err)
	}

	return link, nil
}

func (s *service) List(ctx context.Context, userID domain.UserID) ([]domain.ShareLink, error) {
	links, err := s.storage.UserShareLinks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list share links: %w", err)
	}

	return links, nil
}

func (s *service) Revoke(ctx context.Context, userID domain.UserID, id domain.ShareLinkID) error {
	link, err := s.storage.ShareLinkByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get share link: %w", err)
	}
	if link == nil {
		return serrors.With(serrors.ErrNotFound, "share link not found")
	}

	// ownership lives on the job row
	job, err := s.storage.JobByID(ctx, userID, link.JobID)
	if err != nil {
		return fmt.Errorf("could not get job: %w", err)
	}
	if job == nil {
		return serrors.With(serrors.ErrNotFound, "share link not found")
	}

	if !link.IsActive {
		return nil
	}

	if _, err := s.storage.RevokeShareLink(ctx, id); err != nil {
		return fmt.Errorf("could not revoke share link: %w", err)
	}

	return nil
}

func (s *service) Resolve(ctx context.Context, token string) (*domain.SharedResult, error) {
	link, err := s.storage.ShareLinkByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("could not get share link: %w", err)
	}
	if link == nil {
		return nil, serrors.With(serrors.ErrNotFound, "share link not found")
	}

	job, err := s.storage.JobByIDAny(ctx, link.JobID)
	if err != nil {
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "share link not found")
	}

	return &domain.SharedResult{
		JobType:   job.Type,
		Config:    job.Config,
		Result:    job.Result,
		CreatedAt: job.CreatedAt,
	}, nil
}

func newToken() (string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("could not generate share token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
