// Package account manages user profiles and the Reddit API credentials
// stored on them. Credentials are sealed before they reach storage and only
// opened here; nothing outside this package ever sees a plaintext secret
// after signup.
package account

import (
	"context"
	"fmt"

	"urs/pkg/domain"
	"urs/pkg/secrets"
	"urs/pkg/serrors"
	"urs/pkg/storage"
)

// ProfileUpdates carries the plaintext field changes accepted from the API.
// Nil fields are left untouched; empty strings clear the stored value.
type ProfileUpdates struct {
	RedditClientID     *string
	RedditClientSecret *string
	RedditUsername     *string
}

// Credentials is the decrypted Reddit credential set handed to the job
// runner.
type Credentials struct {
	ClientID     string
	ClientSecret string
	// Username is embedded into the User-Agent sent to Reddit.
	Username string
}

//go:generate mockgen -package mockaccount -source=account.go -destination=mock/mockaccount.go *
type Service interface {
	// Profile returns the user's profile, creating the row on first access.
	// Credential fields on the returned profile are decrypted.
	Profile(ctx context.Context, user domain.User) (*domain.Profile, error)
	// UpdateProfile applies the given changes and returns the updated
	// profile with decrypted credentials.
	UpdateProfile(ctx context.Context, user domain.User, updates ProfileUpdates) (*domain.Profile, error)
	// RedditCredentials returns the user's decrypted Reddit credentials, or
	// a bad-request error when none are configured.
	RedditCredentials(ctx context.Context, userID domain.UserID) (*Credentials, error)
}

type service struct {
	storage storage.Storage
	box     *secrets.Box
}

// New creates an account service sealing credentials with the given box.
func New(storage storage.Storage, box *secrets.Box) Service {
	return &service{
		storage: storage,
		box:     box,
	}
}

func (s *service) Profile(ctx context.Context, user domain.User) (*domain.Profile, error) {
	profile, err := s.storage.StoreProfile(ctx, domain.Profile{
		ID:    user.ID,
		Email: user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("could not load profile: %w", err)
	}

	return s.open(profile)
}

func (s *service) UpdateProfile(ctx context.Context,
	user domain.User,
	updates ProfileUpdates) (*domain.Profile, error) {
	// make sure the row exists before updating it
	if _, err := s.storage.StoreProfile(ctx, domain.Profile{
		ID:    user.ID,
		Email: user.Email,
	}); err != nil {
		return nil, fmt.Errorf("could not load profile: %w", err)
	}

	stored := storage.ProfileUpdates{
		RedditUsername: updates.RedditUsername,
	}
	var err error
	if stored.RedditClientID, err = s.seal(updates.RedditClientID); err != nil {
		return nil, err
	}
	if stored.RedditClientSecret, err = s.seal(updates.RedditClientSecret); err != nil {
		return nil, err
	}

	profile, err := s.storage.UpdateProfile(ctx, user.ID, stored)
	if err != nil {
		return nil, fmt.Errorf("could not update profile: %w", err)
	}
	if profile == nil {
		return nil, serrors.With(serrors.ErrNotFound, "profile not found")
	}

	return s.open(profile)
}

func (s *service) RedditCredentials(ctx context.Context, userID domain.UserID) (*Credentials, error) {
	profile, err := s.storage.Profile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not load profile: %w", err)
	}
	if profile == nil || !profile.HasRedditCredentials() {
		return nil, serrors.With(serrors.ErrBadRequest,
			"Reddit API credentials are not configured. Please add them in your profile settings.")
	}

	opened, err := s.open(profile)
	if err != nil {
		return nil, err
	}

	return &Credentials{
		ClientID:     opened.RedditClientID,
		ClientSecret: opened.RedditClientSecret,
		Username:     opened.RedditUsername,
	}, nil
}

// seal encrypts an optional plaintext update. Empty strings pass through so
// clearing a credential stays possible.
func (s *service) seal(plain *string) (*string, error) {
	if plain == nil {
		return nil, nil //nolint: nilnil
	}
	if *plain == "" {
		empty := ""

		return &empty, nil
	}

	sealed, err := s.box.Encrypt(*plain)
	if err != nil {
		return nil, fmt.Errorf("could not encrypt credential: %w", err)
	}

	return &sealed, nil
}

// open decrypts the credential fields of a stored profile in place.
func (s *service) open(profile *domain.Profile) (*domain.Profile, error) {
	out := *profile
	var err error
	if profile.RedditClientID != "" {
		if out.RedditClientID, err = s.box.Decrypt(profile.RedditClientID); err != nil {
			return nil, fmt.Errorf("could not decrypt credential: %w", err)
		}
	}
	if profile.RedditClientSecret != "" {
		if out.RedditClientSecret, err = s.box.Decrypt(profile.RedditClientSecret); err != nil {
			return nil, fmt.Errorf("could not decrypt credential: %w", err)
		}
	}

	return &out, nil
}
