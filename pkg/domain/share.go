package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ShareLinkID uniquely identifies a share link.
type ShareLinkID uuid.UUID

// ShareLink makes a completed job's result reachable without authentication
// through an unguessable token. Links are revoked by deactivation, never
// deleted, so a leaked token can be invalidated permanently.
type ShareLink struct {
	ID    ShareLinkID `json:"id"`
	JobID JobID       `json:"jobId"`

	// Token is the URL-safe secret embedded in the public link.
	Token    string `json:"shareToken"`
	IsActive bool   `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	RevokedAt time.Time `json:"revokedAt,omitzero"`
}

// SharedResult is the public view of a shared job: enough to render the
// result, nothing that identifies the owner.
type SharedResult struct {
	JobType   JobType         `json:"jobType"`
	Config    json.RawMessage `json:"config"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"createdAt"`
}
