package postgres

import (
	"context"
	"fmt"

	"urs/pkg/domain"
	"urs/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const profilesTable = "user_profiles"

// Profile fetches a profile by user ID. Returns nil when not found.
func (p *PgSQL) Profile(ctx context.Context, id domain.UserID) (*domain.Profile, error) {
	var row PgProfile
	found, err := p.Builder.From(profilesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch profile from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// StoreProfile inserts a profile row. Inserting an existing ID is a no-op;
// the current row is returned either way so first-access creation stays
// idempotent.
func (p *PgSQL) StoreProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	var row PgProfile
	row.FromDomain(profile)

	var stored PgProfile
	found, err := p.Builder.Insert(profilesTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgProfile{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store profile into pg: %w", err)
	}
	if !found {
		// conflict: the profile already exists, fetch it
		return p.Profile(ctx, profile.ID)
	}

	return stored.ToDomain(), nil
}

// UpdateProfile applies the provided field set and returns the updated row,
// or nil when the profile does not exist.
func (p *PgSQL) UpdateProfile(ctx context.Context,
	id domain.UserID,
	updates storage.ProfileUpdates) (*domain.Profile, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Email != nil {
		rec["email"] = *updates.Email
	}
	if updates.RedditClientID != nil {
		rec["reddit_client_id"] = *updates.RedditClientID
	}
	if updates.RedditClientSecret != nil {
		rec["reddit_client_secret"] = *updates.RedditClientSecret
	}
	if updates.RedditUsername != nil {
		rec["reddit_username"] = *updates.RedditUsername
	}

	var row PgProfile
	found, err := p.Builder.Update(profilesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgProfile{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update profile in pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}
