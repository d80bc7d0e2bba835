package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectID uniquely identifies a project.
type ProjectID uuid.UUID

// Project groups a user's scrape jobs under a name.
type Project struct {
	ID     ProjectID `json:"id"`
	UserID UserID    `json:"userId"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the project was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// JobCounts aggregates a project's jobs by status.
type JobCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Running   int `json:"running"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Cancelled int `json:"cancelled"`
}

// Add counts the given status into the aggregate.
func (c *JobCounts) Add(status JobStatus, n int) {
	c.Total += n
	switch status {
	case JobStatusPending:
		c.Pending += n
	case JobStatusRunning:
		c.Running += n
	case JobStatusCompleted:
		c.Completed += n
	case JobStatusFailed:
		c.Failed += n
	case JobStatusCancelled:
		c.Cancelled += n
	}
}
