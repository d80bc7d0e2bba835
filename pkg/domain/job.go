package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobID uniquely identifies a scrape job.
type JobID uuid.UUID

// JobType selects what kind of Reddit entity a job scrapes.
type JobType string

const (
	// JobTypeSubreddit scrapes submissions from a subreddit listing.
	JobTypeSubreddit JobType = "subreddit"
	// JobTypeRedditor scrapes a user's profile, submissions and comments.
	JobTypeRedditor JobType = "redditor"
	// JobTypeComments scrapes the comment thread of a single submission.
	JobTypeComments JobType = "comments"
)

// Valid reports whether t is a known job type.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeSubreddit, JobTypeRedditor, JobTypeComments:
		return true
	}

	return false
}

// JobStatus represents the lifecycle state of a scrape job.
type JobStatus string

const (
	// JobStatusPending indicates the job has been enqueued but not picked up yet.
	JobStatusPending JobStatus = "pending"
	// JobStatusRunning indicates a worker is currently executing the job.
	JobStatusRunning JobStatus = "running"
	// JobStatusCompleted indicates the job finished and a result is stored.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusFailed indicates the job ended with an error; see ErrorMessage.
	JobStatusFailed JobStatus = "failed"
	// JobStatusCancelled indicates the job was cancelled by the user.
	JobStatusCancelled JobStatus = "cancelled"
)

// Terminal reports whether the status is final, i.e. the job will never be
// processed again.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}

	return false
}

// SubredditCategory is a subreddit listing endpoint.
type SubredditCategory string

const (
	CategoryHot           SubredditCategory = "hot"
	CategoryNew           SubredditCategory = "new"
	CategoryRising        SubredditCategory = "rising"
	CategoryTop           SubredditCategory = "top"
	CategoryControversial SubredditCategory = "controversial"
	CategorySearch        SubredditCategory = "search"
)

// TimeFilter restricts top/controversial/search listings to a window.
type TimeFilter string

const (
	TimeFilterHour  TimeFilter = "hour"
	TimeFilterDay   TimeFilter = "day"
	TimeFilterWeek  TimeFilter = "week"
	TimeFilterMonth TimeFilter = "month"
	TimeFilterYear  TimeFilter = "year"
	TimeFilterAll   TimeFilter = "all"
)

func (f TimeFilter) valid() bool {
	switch f {
	case TimeFilterHour, TimeFilterDay, TimeFilterWeek, TimeFilterMonth, TimeFilterYear, TimeFilterAll:
		return true
	}

	return false
}

const (
	// DefaultListingLimit is used when a config does not specify a limit.
	DefaultListingLimit = 25
	// MaxListingLimit caps how many items a single job may request.
	MaxListingLimit = 1000
)

// SubredditConfig configures a subreddit scrape. Payload keys are the wire
// format the SPA submits and are preserved verbatim in exports.
type SubredditConfig struct {
	Subreddit   string            `json:"subreddit"`
	Category    SubredditCategory `json:"category,omitempty"`
	Limit       int               `json:"limit,omitempty"`
	TimeFilter  TimeFilter        `json:"time_filter,omitempty"`
	SearchQuery string            `json:"search_query,omitempty"`
}

// Normalize applies defaults and validates the config in place.
func (c *SubredditConfig) Normalize() error {
	if c.Subreddit == "" {
		return fmt.Errorf("subreddit is required")
	}
	if c.Category == "" {
		c.Category = CategoryHot
	}
	switch c.Category {
	case CategoryHot, CategoryNew, CategoryRising, CategoryTop, CategoryControversial, CategorySearch:
	default:
		return fmt.Errorf("invalid category: %q", c.Category)
	}
	if c.Category == CategorySearch && c.SearchQuery == "" {
		return fmt.Errorf("search_query is required for search category")
	}
	if c.Limit == 0 {
		c.Limit = DefaultListingLimit
	}
	if c.Limit < 1 || c.Limit > MaxListingLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxListingLimit)
	}
	if c.TimeFilter != "" && !c.TimeFilter.valid() {
		return fmt.Errorf("invalid time_filter: %q", c.TimeFilter)
	}

	return nil
}

// RedditorConfig configures a redditor scrape.
type RedditorConfig struct {
	Username string `json:"username"`
	Limit    int    `json:"limit,omitempty"`
}

// Normalize applies defaults and validates the config in place.
func (c *RedditorConfig) Normalize() error {
	if c.Username == "" {
		return fmt.Errorf("username is required")
	}
	if c.Limit == 0 {
		c.Limit = DefaultListingLimit
	}
	if c.Limit < 1 || c.Limit > MaxListingLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxListingLimit)
	}

	return nil
}

// CommentsConfig configures a comment-thread scrape. A Limit of zero means
// all comments. Structured selects the nested reply tree representation;
// it defaults to true.
type CommentsConfig struct {
	URL        string `json:"url"`
	Limit      int    `json:"limit,omitempty"`
	Structured *bool  `json:"structured,omitempty"`
}

// Tree reports whether the result should be a nested reply tree.
func (c CommentsConfig) Tree() bool {
	return c.Structured == nil || *c.Structured
}

// Normalize applies defaults and validates the config in place.
func (c *CommentsConfig) Normalize() error {
	if c.URL == "" {
		return fmt.Errorf("url is required")
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must be zero or positive")
	}

	return nil
}

// NormalizeJobConfig decodes, validates and re-encodes the raw config for the
// given job type, applying defaults. The returned payload is what gets stored
// on the job row.
func NormalizeJobConfig(jobType JobType, raw json.RawMessage) (json.RawMessage, error) {
	var cfg interface {
		Normalize() error
	}

	switch jobType {
	case JobTypeSubreddit:
		cfg = &SubredditConfig{}
	case JobTypeRedditor:
		cfg = &RedditorConfig{}
	case JobTypeComments:
		cfg = &CommentsConfig{}
	default:
		return nil, fmt.Errorf("unknown job type: %q", jobType)
	}

	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}

	out, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not encode config: %w", err)
	}

	return out, nil
}

// ScrapeJob represents a single scrape request and its current state. Config
// and Result are stored as raw JSON; their shapes depend on Type.
type ScrapeJob struct {
	ID        JobID     `json:"id"`
	ProjectID ProjectID `json:"projectId"`
	UserID    UserID    `json:"userId"`

	Type   JobType         `json:"jobType"`
	Config json.RawMessage `json:"config"`

	// Status is the current lifecycle state of the job.
	Status JobStatus `json:"status"`
	// Progress is a 0..100 percentage written by the worker as it goes.
	Progress int `json:"progress"`
	// ErrorMessage carries a user-facing description of the failure, if any.
	ErrorMessage string `json:"errorMessage,omitempty"`
	// Result is the scrape output payload once the job completed.
	Result json.RawMessage `json:"result,omitempty"`

	CreatedAt   time.Time `json:"createdAt"`
	StartedAt   time.Time `json:"startedAt,omitzero"`
	CompletedAt time.Time `json:"completedAt,omitzero"`
	// DeletedAt marks when the job was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
