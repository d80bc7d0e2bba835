package postgres

import (
	"context"
	"fmt"

	"urs/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const shareLinksTable = "share_links"

// StoreShareLink inserts a share link and returns it as stored.
func (p *PgSQL) StoreShareLink(ctx context.Context, link domain.ShareLink) (*domain.ShareLink, error) {
	var row PgShareLink
	row.FromDomain(link)

	var stored PgShareLink
	found, err := p.Builder.Insert(shareLinksTable).
		Rows(row).
		Returning(&PgShareLink{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store share link into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store share link into pg: no row returned")
	}

	return stored.ToDomain(), nil
}

// ActiveShareLinkByJob returns the active link for a job, or nil.
func (p *PgSQL) ActiveShareLinkByJob(ctx context.Context, jobID domain.JobID) (*domain.ShareLink, error) {
	var row PgShareLink
	found, err := p.Builder.From(shareLinksTable).
		Where(
			goqu.I("job_id").Eq(uuid.UUID(jobID)),
			goqu.I("is_active").IsTrue(),
		).
		Order(goqu.I("created_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch share link from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// ShareLinkByToken resolves an active link by its public token, or nil.
// Revoked links never resolve.
func (p *PgSQL) ShareLinkByToken(ctx context.Context, token string) (*domain.ShareLink, error) {
	var row PgShareLink
	found, err := p.Builder.From(shareLinksTable).
		Where(
			goqu.I("share_token").Eq(token),
			goqu.I("is_active").IsTrue(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch share link from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// ShareLinkByID fetches a link by ID regardless of state, or nil.
func (p *PgSQL) ShareLinkByID(ctx context.Context, id domain.ShareLinkID) (*domain.ShareLink, error) {
	var row PgShareLink
	found, err := p.Builder.From(shareLinksTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch share link from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// UserShareLinks returns all links whose jobs belong to the given user,
// newest first. Ownership lives on the job row, so the lookup joins through
// scrape_jobs.
func (p *PgSQL) UserShareLinks(ctx context.Context, userID domain.UserID) ([]domain.ShareLink, error) {
	var rows []PgShareLink
	err := p.Builder.From(goqu.T(shareLinksTable).As("sl")).
		Select(
			goqu.I("sl.id"),
			goqu.I("sl.job_id"),
			goqu.I("sl.share_token"),
			goqu.I("sl.is_active"),
			goqu.I("sl.created_at"),
			goqu.I("sl.revoked_at"),
		).
		Join(
			goqu.T(scrapeJobsTable).As("sj"),
			goqu.On(goqu.I("sj.id").Eq(goqu.I("sl.job_id"))),
		).
		Where(
			goqu.I("sj.user_id").Eq(uuid.UUID(userID)),
			goqu.I("sj.deleted_at").IsNull(),
		).
		Order(goqu.I("sl.created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not fetch share links from pg: %w", err)
	}

	out := make([]domain.ShareLink, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// RevokeShareLink deactivates a link and returns the updated row, or nil when
// not found. Revocation is permanent.
func (p *PgSQL) RevokeShareLink(ctx context.Context, id domain.ShareLinkID) (*domain.ShareLink, error) {
	var row PgShareLink
	found, err := p.Builder.Update(shareLinksTable).
		Set(goqu.Record{
			"is_active":  false,
			"revoked_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("is_active").IsTrue(),
		).
		Returning(&PgShareLink{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not revoke share link in pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}
