package postgres

import (
	"database/sql"
	"encoding/json"
	"time"

	"urs/pkg/domain"

	"github.com/google/uuid"
)

type PgProfile struct {
	ID                 uuid.UUID      `db:"id"`
	Email              sql.NullString `db:"email"`
	RedditClientID     sql.NullString `db:"reddit_client_id"`
	RedditClientSecret sql.NullString `db:"reddit_client_secret"`
	RedditUsername     sql.NullString `db:"reddit_username"`
	CreatedAt          time.Time      `db:"created_at" goqu:"skipinsert"`
	UpdatedAt          sql.NullTime   `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgProfile) ToDomain() *domain.Profile {
	return &domain.Profile{
		ID:                 domain.UserID(p.ID),
		Email:              p.Email.String,
		RedditClientID:     p.RedditClientID.String,
		RedditClientSecret: p.RedditClientSecret.String,
		RedditUsername:     p.RedditUsername.String,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt.Time,
	}
}

func (p *PgProfile) FromDomain(profile domain.Profile) {
	*p = PgProfile{
		ID:                 uuid.UUID(profile.ID),
		Email:              nullString(profile.Email),
		RedditClientID:     nullString(profile.RedditClientID),
		RedditClientSecret: nullString(profile.RedditClientSecret),
		RedditUsername:     nullString(profile.RedditUsername),
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          nullTime(profile.UpdatedAt),
	}
}

type PgProject struct {
	ID          uuid.UUID      `db:"id"          goqu:"skipinsert"`
	UserID      uuid.UUID      `db:"user_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at" goqu:"skipinsert"`
	UpdatedAt   sql.NullTime   `db:"updated_at" goqu:"skipinsert"`
	DeletedAt   sql.NullTime   `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgProject) ToDomain() *domain.Project {
	return &domain.Project{
		ID:          domain.ProjectID(p.ID),
		UserID:      domain.UserID(p.UserID),
		Name:        p.Name,
		Description: p.Description.String,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgProject) FromDomain(project domain.Project) {
	*p = PgProject{
		ID:          uuid.UUID(project.ID),
		UserID:      uuid.UUID(project.UserID),
		Name:        project.Name,
		Description: nullString(project.Description),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   nullTime(project.UpdatedAt),
		DeletedAt:   nullTime(project.DeletedAt),
	}
}

type PgScrapeJob struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`
	UserID    uuid.UUID `db:"user_id"`

	JobType string          `db:"job_type"`
	Config  json.RawMessage `db:"config"`

	Status       string          `db:"status"`
	Progress     int             `db:"progress"`
	ErrorMessage sql.NullString  `db:"error_message" goqu:"skipinsert"`
	Result       json.RawMessage `db:"result"        goqu:"skipinsert"`

	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	StartedAt   sql.NullTime `db:"started_at"   goqu:"skipinsert"`
	CompletedAt sql.NullTime `db:"completed_at" goqu:"skipinsert"`
	DeletedAt   sql.NullTime `db:"deleted_at"   goqu:"skipinsert"`
}

func (j *PgScrapeJob) ToDomain() *domain.ScrapeJob {
	return &domain.ScrapeJob{
		ID:           domain.JobID(j.ID),
		ProjectID:    domain.ProjectID(j.ProjectID),
		UserID:       domain.UserID(j.UserID),
		Type:         domain.JobType(j.JobType),
		Config:       j.Config,
		Status:       domain.JobStatus(j.Status),
		Progress:     j.Progress,
		ErrorMessage: j.ErrorMessage.String,
		Result:       j.Result,
		CreatedAt:    j.CreatedAt,
		StartedAt:    j.StartedAt.Time,
		CompletedAt:  j.CompletedAt.Time,
		DeletedAt:    j.DeletedAt.Time,
	}
}

func (j *PgScrapeJob) FromDomain(job domain.ScrapeJob) {
	*j = PgScrapeJob{
		ID:        uuid.UUID(job.ID),
		ProjectID: uuid.UUID(job.ProjectID),
		UserID:    uuid.UUID(job.UserID),
		JobType:   string(job.Type),
		Config:    job.Config,
		Status:    string(job.Status),
		Progress:  job.Progress,
		ErrorMessage: sql.NullString{
			String: job.ErrorMessage,
			Valid:  job.ErrorMessage != "",
		},
		Result:      job.Result,
		CreatedAt:   job.CreatedAt,
		StartedAt:   nullTime(job.StartedAt),
		CompletedAt: nullTime(job.CompletedAt),
		DeletedAt:   nullTime(job.DeletedAt),
	}
}

func pgJobsToDomain(jobs []PgScrapeJob) []domain.ScrapeJob {
	out := make([]domain.ScrapeJob, 0, len(jobs))
	for i := range jobs {
		out = append(out, *jobs[i].ToDomain())
	}

	return out
}

type PgShareLink struct {
	ID        uuid.UUID    `db:"id"          goqu:"skipinsert"`
	JobID     uuid.UUID    `db:"job_id"`
	Token     string       `db:"share_token"`
	IsActive  bool         `db:"is_active"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	RevokedAt sql.NullTime `db:"revoked_at" goqu:"skipinsert"`
}

func (l *PgShareLink) ToDomain() *domain.ShareLink {
	return &domain.ShareLink{
		ID:        domain.ShareLinkID(l.ID),
		JobID:     domain.JobID(l.JobID),
		Token:     l.Token,
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt,
		RevokedAt: l.RevokedAt.Time,
	}
}

func (l *PgShareLink) FromDomain(link domain.ShareLink) {
	*l = PgShareLink{
		ID:        uuid.UUID(link.ID),
		JobID:     uuid.UUID(link.JobID),
		Token:     link.Token,
		IsActive:  link.IsActive,
		CreatedAt: link.CreatedAt,
		RevokedAt: nullTime(link.RevokedAt),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
