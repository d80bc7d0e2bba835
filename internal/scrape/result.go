package scrape

import (
	"encoding/json"
	"time"

	"urs/pkg/reddit"
)

// Result envelopes are the stored job payloads. Keys are the wire format the
// SPA and the exporters consume, so they stay snake_case like the item
// fields themselves.

// SubredditResult is the stored payload of a subreddit job.
type SubredditResult struct {
	ScrapeSettings json.RawMessage     `json:"scrape_settings"`
	Data           []reddit.Submission `json:"data"`
	TotalResults   int                 `json:"total_results"`
	ScrapedAt      string              `json:"scraped_at"`
}

// RedditorData groups the three sections of a redditor scrape.
type RedditorData struct {
	Information *reddit.RedditorInfo `json:"information"`
	Submissions []reddit.Submission  `json:"submissions"`
	Comments    []reddit.Comment     `json:"comments"`
}

// RedditorResult is the stored payload of a redditor job.
type RedditorResult struct {
	ScrapeSettings json.RawMessage `json:"scrape_settings"`
	Data           RedditorData    `json:"data"`
	ScrapedAt      string          `json:"scraped_at"`
}

// CommentsResult is the stored payload of a comments job.
type CommentsResult struct {
	ScrapeSettings json.RawMessage `json:"scrape_settings"`
	Data           reddit.Thread   `json:"data"`
	ScrapedAt      string          `json:"scraped_at"`
}

func scrapedAt(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}
